package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropTotalRows(t *testing.T) {
	tbl := NewTable("Category", "Item", "all_Share")
	tbl.Append(Row{"Category": "Port of Entry", "Item": "Haneda", "all_Share": "40"})
	tbl.Append(Row{"Category": "Port of Entry", "Item": "total", "all_Share": "100"})
	tbl.Append(Row{"Category": "Port of Entry", "Item": "Total", "all_Share": "100"})

	DropTotalRows(tbl)

	// The marker is case-sensitive, "Total" stays.
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Haneda", tbl.Rows[0].String("Item"))
	assert.Equal(t, "Total", tbl.Rows[1].String("Item"))
}

func TestDropTotalRowsWithoutItemColumn(t *testing.T) {
	tbl := NewTable("Category", "all_Share")
	tbl.Append(Row{"Category": "total", "all_Share": "1"})

	DropTotalRows(tbl)

	assert.Equal(t, 1, tbl.Len())
}

func TestTrimItemPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Dash prefix", "- Domestic Airfare", "Domestic Airfare"},
		{"Indented dash prefix", "  - Accommodation ", "Accommodation"},
		{"No prefix", "Shopping", "Shopping"},
		{"Dash inside label", "Tokyo - Narita", "Tokyo - Narita"},
		{"Single prefix only", "- - Food", "- Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable("Item", "all_Rate")
			tbl.Append(Row{"Item": tt.input, "all_Rate": "1"})

			TrimItemPrefixes(tbl)

			if got := tbl.Rows[0].String("Item"); got != tt.want {
				t.Errorf("TrimItemPrefixes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceMetricColumns(t *testing.T) {
	tbl := NewTable("Item", "all_Share", "uk_Average_Price", "note")
	tbl.Append(Row{"Item": "Shopping", "all_Share": "45%", "uk_Average_Price": "12,340", "note": "12"})
	tbl.Append(Row{"Item": "Food", "all_Share": "n/a", "uk_Average_Price": "", "note": "x"})
	tbl.Append(Row{"Item": "Stay", "all_Share": 9.5, "uk_Average_Price": "1,000.25"})

	CoerceMetricColumns(tbl)

	assert.Equal(t, 45.0, tbl.Rows[0].Float("all_Share"))
	assert.Equal(t, 12340.0, tbl.Rows[0].Float("uk_Average_Price"))
	// Unparseable and empty cells become zero.
	assert.Equal(t, 0.0, tbl.Rows[1].Float("all_Share"))
	assert.Equal(t, 0.0, tbl.Rows[1].Float("uk_Average_Price"))
	// Already-numeric cells are kept as is.
	assert.Equal(t, 9.5, tbl.Rows[2].Float("all_Share"))
	assert.Equal(t, 1000.25, tbl.Rows[2].Float("uk_Average_Price"))
	// Non-metric columns stay untouched.
	assert.Equal(t, "12", tbl.Rows[0].String("note"))
}

// Every metric column must hold only numbers once Clean has run.
func TestCleanLeavesMetricColumnsNumeric(t *testing.T) {
	tbl := NewTable("Category", "Item", "all_Share", "uk_Share")
	tbl.Append(Row{"Category": "purpose", "Item": "- Holiday", "all_Share": "61%", "uk_Share": "74"})
	tbl.Append(Row{"Category": "purpose", "Item": "total", "all_Share": "100", "uk_Share": "100"})
	tbl.Append(Row{"Category": "purpose", "Item": "Business", "all_Share": "?", "uk_Share": "1,2"})

	Clean(tbl)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Holiday", tbl.Rows[0].String("Item"))
	for _, row := range tbl.Rows {
		for _, col := range []string{"all_Share", "uk_Share"} {
			_, isFloat := row[col].(float64)
			assert.True(t, isFloat, "column %s row %v not numeric", col, row)
		}
	}
}

func TestIsMetricColumn(t *testing.T) {
	assert.True(t, IsMetricColumn("all_Share"))
	assert.True(t, IsMetricColumn("uk_Average_Price"))
	assert.True(t, IsMetricColumn("all_Nights"))
	assert.True(t, IsMetricColumn("uk_spending_Rate"))
	assert.False(t, IsMetricColumn("Category"))
	assert.False(t, IsMetricColumn("Item"))
}
