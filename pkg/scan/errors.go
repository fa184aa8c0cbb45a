package scan

import (
	"errors"
	"fmt"
)

// errEmptyLine marks an empty line encountered without the allow flag.
var errEmptyLine = errors.New("is empty")

// LineError is a fatal per-line data error. It carries the 1-based line
// number and wraps the underlying failure kind so callers can distinguish a
// data halt from a configuration error.
type LineError struct {
	Num int
	Err error
}

// Error renders a single line-numbered diagnostic.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %v", e.Num, e.Err)
}

// Unwrap exposes the underlying failure kind.
func (e *LineError) Unwrap() error {
	return e.Err
}

// maxFieldDiag caps how much of a failing field appears in diagnostics.
const maxFieldDiag = 40

// ellipsize abbreviates field content for diagnostics so a corrupt input
// line cannot produce an unbounded error message.
func ellipsize(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldDiag {
		return s
	}
	return string(runes[:maxFieldDiag]) + "..."
}
