package dataset

import (
	"strconv"
	"strings"

	"visitordash/domain/models"
)

// The aggregate marker rows carry no chartable data.
const totalMarker = "total"

// Clean runs the three row/type transforms in order: drop aggregate
// rows, trim label prefixes, coerce metric columns to numbers. Later
// steps depend on the earlier ones, so the order is fixed.
func Clean(t *Table) {
	DropTotalRows(t)
	TrimItemPrefixes(t)
	CoerceMetricColumns(t)
}

// DropTotalRows removes rows whose item label equals the literal
// aggregate marker "total" (case-sensitive). A table without an
// item-like column is left as is.
func DropTotalRows(t *Table) {
	item, ok := t.ItemColumn()
	if !ok {
		return
	}
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if row.String(item) == totalMarker {
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
}

// TrimItemPrefixes strips a single leading "- " and surrounding
// whitespace from every value of each item-like label column. The
// source workbook indents sub-items that way.
func TrimItemPrefixes(t *Table) {
	for _, col := range t.Columns {
		if !strings.Contains(strings.ToLower(col), "item") {
			continue
		}
		for _, row := range t.Rows {
			s, ok := row[col].(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			s = strings.TrimPrefix(s, "- ")
			row[col] = strings.TrimSpace(s)
		}
	}
}

// IsMetricColumn reports whether a normalized column name carries one of
// the metric-kind tokens (share, rate, price, spending, nights, count).
func IsMetricColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, kind := range models.MetricKinds {
		if strings.Contains(lower, string(kind)) {
			return true
		}
	}
	return false
}

// CoerceMetricColumns converts string cells of every metric column to
// float64, removing thousands separators and percent signs first.
// Unparseable cells, including empty and placeholder text, become zero.
// Non-metric columns are left untouched.
func CoerceMetricColumns(t *Table) {
	for _, col := range t.Columns {
		if !IsMetricColumn(col) {
			continue
		}
		for _, row := range t.Rows {
			switch v := row[col].(type) {
			case float64:
				// already numeric
			case string:
				row[col] = parseNumeric(v)
			default:
				row[col] = 0.0
			}
		}
	}
}

func parseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
