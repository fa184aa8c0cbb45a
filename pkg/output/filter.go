package output

import (
	"fmt"
	"io"
)

// FilterFormatter emits both raw lines of each offending pair unchanged,
// with one blank line separating successive pairs.
type FilterFormatter struct {
	emitted bool
}

// NewFilterFormatter creates a filter formatter.
func NewFilterFormatter() *FilterFormatter {
	return &FilterFormatter{}
}

// Name returns the mode name.
func (f *FilterFormatter) Name() string {
	return "filter"
}

// Emit writes the previous and current raw lines. The separator goes
// between pairs, never after the last one.
func (f *FilterFormatter) Emit(ev *GapEvent, w io.Writer) error {
	if f.emitted {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	} else {
		f.emitted = true
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", ev.PrevLine, ev.CurrLine)
	return err
}
