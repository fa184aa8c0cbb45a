// Package scan drives the line engine: it reads numbered raw lines from a
// source, classifies and parses them, and reports gaps between consecutive
// valid values.
package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// Line is one raw input line with its 1-based number. The line terminator
// has already been stripped.
type Line struct {
	Num  int
	Text string
}

// LineSource provides a lazy, finite, non-restartable sequence of lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next line. Returns io.EOF when the stream is
	// exhausted.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// StdinPath is the file argument that selects standard input.
const StdinPath = "-"

// FileSource reads lines from a file, or from standard input when the path
// is a single hyphen.
type FileSource struct {
	file    *os.File // nil when reading stdin
	scanner *bufio.Scanner
	name    string
	line    int
}

// NewFileSource opens the given path. Open failures surface here, before
// any processing begins.
func NewFileSource(path string) (*FileSource, error) {
	if path == StdinPath {
		return &FileSource{
			scanner: newLineScanner(os.Stdin),
			name:    "stdin",
		}, nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}

	return &FileSource{
		file:    f,
		scanner: newLineScanner(f),
		name:    path,
	}, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return s
}

// Next returns the next line or io.EOF at stream end.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		s.line++
		return &Line{Num: s.line, Text: s.scanner.Text()}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return nil, io.EOF
}

// Close releases the underlying file, if any.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
