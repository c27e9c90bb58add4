package dataset

import (
	"strings"

	"visitordash/domain/models"
)

// Group tokens encoded in column names, e.g. "all_Share" / "uk_Share".
const (
	tokenAll = "all"
	tokenUK  = "uk"
)

// ColumnPair is the validated schema mapping for one metric kind: the
// single "all" column and the single "uk" column carrying it.
type ColumnPair struct {
	All string
	UK  string
}

// ResolveColumnPair finds the one "all" and one "uk" column of the
// requested metric kind. Zero candidates yield a MissingColumnError,
// more than one an AmbiguousColumnError; first-match-wins lookup is
// deliberately not offered.
func ResolveColumnPair(t *Table, kind models.MetricKind) (ColumnPair, error) {
	all, err := resolveRole(t, tokenAll, kind)
	if err != nil {
		return ColumnPair{}, err
	}
	uk, err := resolveRole(t, tokenUK, kind)
	if err != nil {
		return ColumnPair{}, err
	}
	return ColumnPair{All: all, UK: uk}, nil
}

func resolveRole(t *Table, group string, kind models.MetricKind) (string, error) {
	var candidates []string
	for _, col := range t.Columns {
		if columnHasGroup(col, group) && strings.Contains(strings.ToLower(col), string(kind)) {
			candidates = append(candidates, col)
		}
	}
	switch len(candidates) {
	case 0:
		return "", &MissingColumnError{Group: group, Kind: string(kind)}
	case 1:
		return candidates[0], nil
	default:
		return "", &AmbiguousColumnError{Group: group, Kind: string(kind), Candidates: candidates}
	}
}

// columnHasGroup matches the group token against whole "_"-separated
// tokens of the name, so "all" never matches "overall_Share".
func columnHasGroup(column, group string) bool {
	for _, tok := range strings.Split(strings.ToLower(column), "_") {
		if tok == group {
			return true
		}
	}
	return false
}
