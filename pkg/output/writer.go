// Package output renders detected gap events in diff or filter style.
package output

import (
	"errors"
	"io"
	"io/fs"
	"syscall"
)

// ErrClosed signals that the downstream output consumer went away. It is a
// termination signal, not a failure: the engine stops producing output and
// the run still exits successfully.
var ErrClosed = errors.New("output consumer closed")

// Writer wraps the output sink and converts closed-pipe write failures into
// ErrClosed, keeping "consumer went away" distinct from real write errors.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write passes through to the underlying writer, mapping broken-pipe
// failures to ErrClosed.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if err != nil && isClosedPipe(err) {
		return n, ErrClosed
	}
	return n, err
}

func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, fs.ErrClosed)
}
