package scan

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/gapscan/gapscan/pkg/field"
	"github.com/gapscan/gapscan/pkg/output"
	"github.com/gapscan/gapscan/pkg/value"
)

// Params holds the resolved configuration the engine runs with. Threshold
// and format validation has already happened at startup.
type Params struct {
	// Delimiter splits candidate lines into fields; empty means the whole
	// line is field 1.
	Delimiter string

	// Index selects the field to parse, 1-based.
	Index int

	// Format controls value parsing for the whole run.
	Format value.Format

	// Relation and Threshold define what counts as a gap.
	Relation  value.Relation
	Threshold value.Delta

	// Comment is the comment marker; empty disables comment detection.
	Comment string

	// Allow converts per-line data errors from fatal halts into skips.
	Allow bool

	// Formatter renders detected gaps.
	Formatter output.Formatter
}

// Engine is the line-processing state machine. Its only mutable state is
// the previous-record slot, local to each Run call.
type Engine struct {
	p Params
}

// NewEngine creates an engine from resolved parameters.
func NewEngine(p Params) *Engine {
	return &Engine{p: p}
}

// record is the retained state for one valid line: enough to compute and
// report a gap against the next valid line.
type record struct {
	num   int
	field string
	value value.Value
	line  string
}

// Run consumes the source line by line until exhaustion or the first fatal
// error. Per-line data errors come back as *LineError; a closed output
// consumer ends the run early with a nil error.
func (e *Engine) Run(ctx context.Context, src LineSource, sink io.Writer) error {
	out := output.NewWriter(sink)

	var prev *record
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch field.Classify(line.Text, e.p.Comment) {
		case field.ClassComment:
			log.Debug().Int("line", line.Num).Msg("skipping comment line")
			continue
		case field.ClassEmpty:
			if e.p.Allow {
				log.Debug().Int("line", line.Num).Msg("skipping empty line")
				continue
			}
			return &LineError{Num: line.Num, Err: errEmptyLine}
		}

		fieldText, err := field.Extract(line.Text, e.p.Delimiter, e.p.Index)
		if err != nil {
			if e.p.Allow {
				log.Debug().Int("line", line.Num).Err(err).Msg("skipping invalid line")
				continue
			}
			return &LineError{Num: line.Num, Err: fmt.Errorf("is invalid: %w", err)}
		}

		v, err := e.p.Format.Parse(fieldText)
		if err != nil {
			if e.p.Allow {
				log.Debug().Int("line", line.Num).Err(err).Msg("skipping unparsable line")
				continue
			}
			return &LineError{Num: line.Num, Err: fmt.Errorf("field %q %w", ellipsize(fieldText), err)}
		}

		// A skipped line never touches the previous-record slot, so gap
		// detection survives comment and invalid-line interruptions.
		if prev != nil {
			delta := v.Sub(prev.value)
			if e.p.Relation.Matches(delta, e.p.Threshold) {
				ev := &output.GapEvent{
					PrevField: prev.field,
					CurrField: fieldText,
					PrevLine:  prev.line,
					CurrLine:  line.Text,
					Delta:     delta,
				}
				if err := e.p.Formatter.Emit(ev, out); err != nil {
					if errors.Is(err, output.ErrClosed) {
						log.Debug().Int("line", line.Num).Msg("output consumer closed, stopping scan")
						return nil
					}
					return fmt.Errorf("writing output: %w", err)
				}
			}
		}

		prev = &record{num: line.Num, field: fieldText, value: v, line: line.Text}
	}

	return nil
}
