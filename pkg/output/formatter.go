package output

import (
	"io"

	"github.com/gapscan/gapscan/pkg/value"
)

// GapEvent is one detected gap between two consecutive valid records. It is
// ephemeral: the engine builds it and hands it straight to a Formatter.
type GapEvent struct {
	// PrevField and CurrField are the original field texts as extracted,
	// never a re-rendering of the parsed values.
	PrevField string
	CurrField string

	// PrevLine and CurrLine are the full raw lines the fields came from.
	PrevLine string
	CurrLine string

	// Delta is the computed difference between the two parsed values.
	Delta value.Delta
}

// Formatter renders gap events in a specific style.
type Formatter interface {
	// Emit renders one gap event to the given writer.
	Emit(ev *GapEvent, w io.Writer) error

	// Name returns the mode name (diff, filter).
	Name() string
}
