package value

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrGapSyntax indicates a malformed gap threshold string. Threshold parsing
// happens once at startup and is always fatal: a bad threshold is a usage
// error, not a data error.
var ErrGapSyntax = errors.New("invalid gap syntax")

// DefaultGap is the shared flag default for the gap threshold. For numeric
// formats it is the integer 1; temporal formats promote it to "1h".
const DefaultGap = "1"

// Delta is a signed difference between two values of the same kind: a plain
// count for numeric formats, a duration for temporal ones.
type Delta struct {
	num      int64
	dur      time.Duration
	temporal bool
}

// Count wraps a numeric difference.
func Count(n int64) Delta {
	return Delta{num: n}
}

// Duration wraps a temporal difference.
func Duration(d time.Duration) Delta {
	return Delta{dur: d, temporal: true}
}

// Compare orders d against other, returning -1, 0, or 1. Both deltas must
// carry the same kind, which holds whenever they come from one run's format.
func (d Delta) Compare(other Delta) int {
	if d.temporal {
		switch {
		case d.dur < other.dur:
			return -1
		case d.dur > other.dur:
			return 1
		}
		return 0
	}
	switch {
	case d.num < other.num:
		return -1
	case d.num > other.num:
		return 1
	}
	return 0
}

// String renders the delta for diagnostics.
func (d Delta) String() string {
	if d.temporal {
		return d.dur.String()
	}
	return strconv.FormatInt(d.num, 10)
}

// ParseThreshold parses a user-supplied gap threshold for the format.
// Numeric formats take a signed integer. Temporal formats take a signed
// integer immediately followed by one unit character from [dhms], like
// "12h"; the literal "1" is promoted to "1h" so the shared flag default
// works for every format. The sign is unconstrained: a zero or negative
// threshold is legal and simply shifts what the relation matches.
func (f Format) ParseThreshold(s string) (Delta, error) {
	if !f.Temporal() {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Delta{}, fmt.Errorf("%w: numeric gap %q: %v", ErrGapSyntax, s, err)
		}
		return Count(n), nil
	}

	if s == DefaultGap {
		s = "1h"
	}
	if len(s) < 2 {
		return Delta{}, fmt.Errorf("%w: gap %q needs a value and a timebase from [dhms]", ErrGapSyntax, s)
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return Delta{}, fmt.Errorf("%w: gap %q: %v", ErrGapSyntax, s, err)
	}

	switch s[len(s)-1] {
	case 's':
		return Duration(time.Duration(n) * time.Second), nil
	case 'm':
		return Duration(time.Duration(n) * time.Minute), nil
	case 'h':
		return Duration(time.Duration(n) * time.Hour), nil
	case 'd':
		return Duration(time.Duration(n) * 24 * time.Hour), nil
	default:
		return Delta{}, fmt.Errorf("%w: gap %q: unexpected timebase %q", ErrGapSyntax, s, string(s[len(s)-1]))
	}
}
