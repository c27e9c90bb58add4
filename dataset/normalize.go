package dataset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// Currency, percent and parenthesis characters carry no meaning once
	// the unit is encoded in the column role.
	symbolChars = regexp.MustCompile(`[()%$¥£€]`)
	// Runs of whitespace, colon-like separators and underscores collapse
	// into a single separator.
	separatorRuns = regexp.MustCompile(`[\s:;_]+`)
)

// NormalizeHeader rewrites a column header into canonical token form:
// transliterate to ASCII, strip currency/percent/parenthesis symbols,
// trim, and collapse separator runs into "_".
//
// The function is idempotent: normalizing an already-normalized header
// returns it unchanged. "all:Share (%)" becomes "all_Share".
func NormalizeHeader(name string) string {
	s := symbolChars.ReplaceAllString(name, "")
	s = unidecode.Unidecode(s)
	s = strings.TrimSpace(s)
	s = separatorRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeColumns applies NormalizeHeader to every column of the table,
// renaming row keys along the way. Headers that collapse into duplicates
// get a numeric suffix so no data is shadowed.
func NormalizeColumns(t *Table) {
	seen := map[string]int{}
	renamed := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		name := NormalizeHeader(col)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		} else {
			seen[name] = 1
		}
		renamed[i] = name
		if name == col {
			continue
		}
		for _, row := range t.Rows {
			if v, ok := row[col]; ok {
				row[name] = v
				delete(row, col)
			}
		}
	}
	t.Columns = renamed
}
