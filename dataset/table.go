package dataset

import "strings"

// Row maps a column name to a cell value (string or float64).
type Row map[string]any

// Table is an ordered set of rows sharing one column list. Tables are
// loaded once per session and treated as read-only after the cleaning
// and derivation steps; every reshaping operation returns a copy.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds an empty table with the given column order.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string{}, columns...)}
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column name if it is not present yet.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append adds a row to the table. Missing columns stay absent.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Clone deep-copies the table so downstream transforms cannot touch the
// original rows.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns...)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, cloneRow(row))
	}
	return out
}

func cloneRow(row Row) Row {
	copied := make(Row, len(row))
	for k, v := range row {
		copied[k] = v
	}
	return copied
}

// Filter returns a new table holding copies of the rows the predicate
// accepts, in the original order.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := NewTable(t.Columns...)
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, cloneRow(row))
		}
	}
	return out
}

// Distinct returns the distinct values of a column in row order. Absent
// and non-string cells are skipped.
func (t *Table) Distinct(column string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, row := range t.Rows {
		s, ok := row[column].(string)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		values = append(values, s)
	}
	return values
}

// String returns the cell as a string, or "" when absent or numeric.
func (r Row) String(column string) string {
	s, _ := r[column].(string)
	return s
}

// Float returns the cell as a float64, or 0 when absent or non-numeric.
func (r Row) Float(column string) float64 {
	f, _ := r[column].(float64)
	return f
}

// ItemColumn finds the label column of a table: the first column whose
// name contains the token "item" (case-insensitive).
func (t *Table) ItemColumn() (string, bool) {
	for _, c := range t.Columns {
		if strings.Contains(strings.ToLower(c), "item") {
			return c, true
		}
	}
	return "", false
}
