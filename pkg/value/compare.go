package value

import "fmt"

// Relation is the comparison applied between a computed gap and the
// configured threshold.
type Relation string

const (
	RelationGT Relation = "gt"
	RelationGE Relation = "ge"
	RelationLT Relation = "lt"
	RelationLE Relation = "le"
)

// ParseRelation validates a relation name from configuration.
func ParseRelation(s string) (Relation, error) {
	switch r := Relation(s); r {
	case RelationGT, RelationGE, RelationLT, RelationLE:
		return r, nil
	default:
		return "", fmt.Errorf("invalid relation %q (use gt, ge, lt, or le)", s)
	}
}

// Matches evaluates `delta <relation> threshold`. The comparator is pure:
// it holds no state beyond its two inputs.
func (r Relation) Matches(delta, threshold Delta) bool {
	cmp := delta.Compare(threshold)
	switch r {
	case RelationGT:
		return cmp > 0
	case RelationGE:
		return cmp >= 0
	case RelationLT:
		return cmp < 0
	case RelationLE:
		return cmp <= 0
	}
	return false
}
