// Package field classifies raw input lines and extracts the configured field.
package field

import (
	"errors"
	"fmt"
	"strings"
)

// Class categorizes a raw line before any parsing happens.
type Class int

const (
	// ClassCandidate lines proceed to field extraction.
	ClassCandidate Class = iota

	// ClassComment lines start with the comment marker and are always skipped.
	ClassComment

	// ClassEmpty lines have no content after terminator stripping.
	ClassEmpty
)

// Classify categorizes a line. The comment check is prefix-exact: no
// leading whitespace is tolerated before the marker, and an empty marker
// disables comment detection entirely.
func Classify(line, commentMarker string) Class {
	if commentMarker != "" && strings.HasPrefix(line, commentMarker) {
		return ClassComment
	}
	if len(line) == 0 {
		return ClassEmpty
	}
	return ClassCandidate
}

// Extraction failures. Both classify the line as invalid, distinct from
// comment and empty lines.
var (
	// ErrIndexOutOfRange indicates the field index exceeds the number of
	// fields the line splits into.
	ErrIndexOutOfRange = errors.New("no field at index")

	// ErrEmptyField indicates the selected field has zero length.
	ErrEmptyField = errors.New("empty field")
)

// Extract splits a candidate line by the literal delimiter and returns the
// 1-based indexed field. There are no quoting or escaping semantics. An
// empty delimiter means the whole line is field 1.
func Extract(line, delimiter string, index int) (string, error) {
	if delimiter == "" {
		return line, nil
	}

	fields := strings.Split(line, delimiter)
	if index > len(fields) {
		return "", fmt.Errorf("%w %d (line has %d field(s))", ErrIndexOutOfRange, index, len(fields))
	}

	f := fields[index-1]
	if f == "" {
		return "", fmt.Errorf("%w at index %d", ErrEmptyField, index)
	}
	return f, nil
}
