package value

import (
	"testing"
	"time"
)

func TestParseRelation(t *testing.T) {
	for _, name := range []string{"gt", "ge", "lt", "le"} {
		if _, err := ParseRelation(name); err != nil {
			t.Errorf("ParseRelation(%q) error = %v", name, err)
		}
	}
	if _, err := ParseRelation("eq"); err == nil {
		t.Error("ParseRelation(eq) expected error, got nil")
	}
}

func TestMatches_ExactTemporalBoundary(t *testing.T) {
	threshold := Duration(12 * time.Hour)

	exact := Duration(12 * time.Hour)
	if RelationGT.Matches(exact, threshold) {
		t.Error("delta of exactly 12h must not match GT 12h")
	}
	if !RelationGE.Matches(exact, threshold) {
		t.Error("delta of exactly 12h must match GE 12h")
	}

	justUnder := Duration(11*time.Hour + 59*time.Minute + 59*time.Second)
	if RelationGT.Matches(justUnder, threshold) {
		t.Error("11h59m59s must not match GT 12h")
	}
	if RelationGE.Matches(justUnder, threshold) {
		t.Error("11h59m59s must not match GE 12h")
	}
}

func TestMatches_NegativeDelta(t *testing.T) {
	// Signed semantics: -10 is not greater than 4, but it is less than 4.
	delta := Count(-10)
	threshold := Count(4)

	if RelationGT.Matches(delta, threshold) {
		t.Error("-10 GT 4 must be false")
	}
	if !RelationLT.Matches(delta, threshold) {
		t.Error("-10 LT 4 must be true")
	}
}

func TestMatches_ZeroThresholdMatchesEverything(t *testing.T) {
	// A degenerate threshold is legal and must not be special-cased.
	threshold := Count(0)
	for _, n := range []int64{1, 5, 1 << 40} {
		if !RelationGT.Matches(Count(n), threshold) {
			t.Errorf("%d GT 0 must be true", n)
		}
	}
}

func TestMatches_AllRelations(t *testing.T) {
	cases := []struct {
		relation Relation
		delta    int64
		want     bool
	}{
		{RelationGT, 5, true},
		{RelationGT, 4, false},
		{RelationGE, 4, true},
		{RelationGE, 3, false},
		{RelationLT, 3, true},
		{RelationLT, 4, false},
		{RelationLE, 4, true},
		{RelationLE, 5, false},
	}

	threshold := Count(4)
	for _, tc := range cases {
		if got := tc.relation.Matches(Count(tc.delta), threshold); got != tc.want {
			t.Errorf("%d %s 4 = %v, want %v", tc.delta, tc.relation, got, tc.want)
		}
	}
}
