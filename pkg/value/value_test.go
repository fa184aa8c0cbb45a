package value

import (
	"errors"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"uint", "int", "unix", "unix_ms", "rfc-3339"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", name, err)
		}
	}

	if _, err := ParseFormat("float"); err == nil {
		t.Error("ParseFormat(float) expected error, got nil")
	}
}

func TestParse_Uint(t *testing.T) {
	v, err := FormatUint.Parse("1936")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := v.Sub(Number(1900)); got.Compare(Count(36)) != 0 {
		t.Errorf("value - 1900 = %v, want 36", got)
	}
}

func TestParse_UintRejectsOversized(t *testing.T) {
	// 2^63 exceeds the signed range used for delta arithmetic.
	_, err := FormatUint.Parse("9223372036854775808")
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Parse(2^63) error = %v, want ErrFormat", err)
	}

	// 2^63-1 is the largest accepted value.
	if _, err := FormatUint.Parse("9223372036854775807"); err != nil {
		t.Errorf("Parse(2^63-1) error = %v", err)
	}
}

func TestParse_UintRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "abc", "12x", "-5", "1.5"} {
		if _, err := FormatUint.Parse(s); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
		}
	}
}

func TestParse_IntAcceptsSign(t *testing.T) {
	v, err := FormatInt.Parse("-42")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := v.Sub(Number(0)); got.Compare(Count(-42)) != 0 {
		t.Errorf("parsed value = %v, want -42", got)
	}
}

func TestParse_TrimsQuotesAndWhitespace(t *testing.T) {
	v, err := FormatUint.Parse(`  "123"  `)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := v.Sub(Number(0)); got.Compare(Count(123)) != 0 {
		t.Errorf("parsed value = %v, want 123", got)
	}
}

func TestParse_Unix(t *testing.T) {
	v, err := FormatUnix.Parse("1700000000")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Instant(time.Unix(1700000000, 0).UTC())
	if got := v.Sub(want); got.Compare(Duration(0)) != 0 {
		t.Errorf("parsed instant differs from time.Unix by %v", got)
	}
}

func TestParse_UnixRejectsOutOfRange(t *testing.T) {
	// Epochs beyond time.Time's representable range would wrap and invert
	// the sign of computed deltas.
	for _, s := range []string{"9223372036854775807", "-9223372036854775808", "253402300800", "-62135596801"} {
		if _, err := FormatUnix.Parse(s); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
		}
	}

	// The bounds themselves are valid.
	for _, s := range []string{"253402300799", "-62135596800"} {
		if _, err := FormatUnix.Parse(s); err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", s, err)
		}
	}
}

func TestParse_UnixMsRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{"9223372036854775807", "-9223372036854775808", "253402300800000"} {
		if _, err := FormatUnixMs.Parse(s); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
		}
	}

	if _, err := FormatUnixMs.Parse("253402300799999"); err != nil {
		t.Errorf("Parse(253402300799999) error = %v, want nil", err)
	}
}

func TestParse_UnixMsResolution(t *testing.T) {
	a, err := FormatUnixMs.Parse("1700000000500")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := FormatUnixMs.Parse("1700000000000")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := a.Sub(b); got.Compare(Duration(500*time.Millisecond)) != 0 {
		t.Errorf("delta = %v, want 500ms", got)
	}
}

func TestParse_RFC3339(t *testing.T) {
	v, err := FormatRFC3339.Parse("2024-06-01T12:00:00Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Instant(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if got := v.Sub(want); got.Compare(Duration(0)) != 0 {
		t.Errorf("parsed instant off by %v", got)
	}
}

func TestParse_RFC3339NormalizesOffset(t *testing.T) {
	// +02:00 and Z forms of the same instant must compare equal.
	a, err := FormatRFC3339.Parse("2024-06-01T14:00:00+02:00")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, err := FormatRFC3339.Parse("2024-06-01T12:00:00Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := a.Sub(b); got.Compare(Duration(0)) != 0 {
		t.Errorf("offset instant differs from UTC instant by %v", got)
	}
}

func TestParse_RFC3339AcceptsUnderscore(t *testing.T) {
	a, err := FormatRFC3339.Parse("2024-06-01_12:00:00Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b, _ := FormatRFC3339.Parse("2024-06-01T12:00:00Z")

	if got := a.Sub(b); got.Compare(Duration(0)) != 0 {
		t.Errorf("underscore form differs by %v", got)
	}
}

func TestParse_RFC3339Malformed(t *testing.T) {
	for _, s := range []string{"2024-06-01", "12:00:00", "not a time", "2024-13-01T00:00:00Z"} {
		if _, err := FormatRFC3339.Parse(s); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
		}
	}
}

func TestSub_NegativeDelta(t *testing.T) {
	// Out-of-order values produce negative deltas, which are data, not errors.
	got := Number(10).Sub(Number(20))
	if got.Compare(Count(-10)) != 0 {
		t.Errorf("10 - 20 = %v, want -10", got)
	}

	earlier := Instant(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := Instant(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC))
	if d := earlier.Sub(later); d.Compare(Duration(-time.Hour)) != 0 {
		t.Errorf("earlier - later = %v, want -1h", d)
	}
}

func TestTemporal(t *testing.T) {
	temporal := map[Format]bool{
		FormatUint:    false,
		FormatInt:     false,
		FormatUnix:    true,
		FormatUnixMs:  true,
		FormatRFC3339: true,
	}
	for f, want := range temporal {
		if got := f.Temporal(); got != want {
			t.Errorf("%s.Temporal() = %v, want %v", f, got, want)
		}
	}
}
