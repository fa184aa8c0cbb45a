// Package value provides typed field parsing and gap arithmetic.
package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrFormat indicates a field that failed the typed parse for the active format.
var ErrFormat = errors.New("format error")

// Unix epoch bounds covering years 1 through 9999. Epochs outside this
// range overflow time.Time's representation and flip the sign of computed
// deltas.
const (
	minUnixSec = -62135596800 // 0001-01-01T00:00:00Z
	maxUnixSec = 253402300799 // 9999-12-31T23:59:59Z
)

// Format selects how field text is parsed. One format is active per run;
// every value in a run carries the same representation.
type Format string

const (
	FormatUint    Format = "uint"
	FormatInt     Format = "int"
	FormatUnix    Format = "unix"
	FormatUnixMs  Format = "unix_ms"
	FormatRFC3339 Format = "rfc-3339"
)

// ParseFormat validates a format name from configuration.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatUint, FormatInt, FormatUnix, FormatUnixMs, FormatRFC3339:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (use uint, int, unix, unix_ms, or rfc-3339)", s)
	}
}

// Temporal reports whether the format produces instants rather than numbers.
func (f Format) Temporal() bool {
	switch f {
	case FormatUnix, FormatUnixMs, FormatRFC3339:
		return true
	}
	return false
}

// Value is a single parsed field value: either a signed number or an
// absolute instant, fixed by the run's Format.
type Value struct {
	num      int64
	instant  time.Time
	temporal bool
}

// Number wraps a numeric value.
func Number(n int64) Value {
	return Value{num: n}
}

// Instant wraps an absolute point in time.
func Instant(t time.Time) Value {
	return Value{instant: t, temporal: true}
}

// Sub computes the signed difference v − prev. Both values must come from
// the same format; negative results are meaningful data, not errors.
func (v Value) Sub(prev Value) Delta {
	if v.temporal {
		return Duration(v.instant.Sub(prev.instant))
	}
	return Count(v.num - prev.num)
}

// Parse turns trimmed field text into a Value. Surrounding whitespace and
// double quotes are stripped first, so quoted CSV fields parse as-is.
// All failures wrap ErrFormat.
func (f Format) Parse(field string) (Value, error) {
	s := strings.Trim(strings.TrimSpace(field), `"`)

	switch f {
	case FormatUint:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: number too large (>2^63-1)", ErrFormat)
		}
		return Number(int64(u)), nil

	case FormatInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return Number(n), nil

	case FormatUnix:
		sec, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if sec < minUnixSec || sec > maxUnixSec {
			return Value{}, fmt.Errorf("%w: invalid timestamp", ErrFormat)
		}
		return Instant(time.Unix(sec, 0).UTC()), nil

	case FormatUnixMs:
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if ms < minUnixSec*1000 || ms > maxUnixSec*1000+999 {
			return Value{}, fmt.Errorf("%w: invalid timestamp", ErrFormat)
		}
		return Instant(time.UnixMilli(ms).UTC()), nil

	case FormatRFC3339:
		// An underscore is accepted in place of the T separator.
		s = strings.ReplaceAll(s, "_", "T")
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid timestamp %q", ErrFormat, s)
		}
		return Instant(t), nil

	default:
		return Value{}, fmt.Errorf("%w: unknown format %q", ErrFormat, string(f))
	}
}
