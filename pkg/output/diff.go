package output

import (
	"fmt"
	"io"
)

// DiffFormatter emits one line per gap: the two offending field values
// joined by the output delimiter.
type DiffFormatter struct {
	delimiter string
}

// NewDiffFormatter creates a diff formatter with the given output delimiter.
func NewDiffFormatter(delimiter string) *DiffFormatter {
	return &DiffFormatter{delimiter: delimiter}
}

// Name returns the mode name.
func (f *DiffFormatter) Name() string {
	return "diff"
}

// Emit writes `<prev><delimiter><curr>` followed by a newline.
func (f *DiffFormatter) Emit(ev *GapEvent, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%s%s\n", ev.PrevField, f.delimiter, ev.CurrField)
	return err
}
