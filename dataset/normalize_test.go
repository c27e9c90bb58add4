package dataset

import (
	"reflect"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"All share with unit", "all:Share (%)", "all_Share"},
		{"UK share with unit", "uk:Share (%)", "uk_Share"},
		{"Plain column", "Category", "Category"},
		{"Surrounding whitespace", "  Item  ", "Item"},
		{"Whitespace run", "Port  of   Entry", "Port_of_Entry"},
		{"Colon next to spaces", "uk : Average Price (¥)", "uk_Average_Price"},
		{"Currency symbols", "price ($)", "price"},
		{"Percent only", "%", ""},
		{"Already normalized", "all_Share", "all_Share"},
		{"Non ASCII", "ōsaka share", "osaka_share"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHeader(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Idempotence: a second pass must change nothing.
			if again := NormalizeHeader(got); again != got {
				t.Errorf("NormalizeHeader not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeColumns(t *testing.T) {
	tbl := NewTable("Category", "Item", "all:Share (%)", "uk:Share (%)")
	tbl.Append(Row{
		"Category":     "purpose",
		"Item":         "Holiday",
		"all:Share (%)": "61",
		"uk:Share (%)": "74",
	})

	NormalizeColumns(tbl)

	want := []string{"Category", "Item", "all_Share", "uk_Share"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Fatalf("Columns = %v, want %v", tbl.Columns, want)
	}
	if tbl.Rows[0]["all_Share"] != "61" {
		t.Errorf("row value not carried over: %v", tbl.Rows[0])
	}
	if _, stale := tbl.Rows[0]["all:Share (%)"]; stale {
		t.Error("old column key still present in row")
	}
}

func TestNormalizeColumnsDuplicates(t *testing.T) {
	tbl := NewTable("share (%)", "share:%", "")
	tbl.Append(Row{"share (%)": "1", "share:%": "2", "": "3"})

	NormalizeColumns(tbl)

	want := []string{"share", "share_1", "column_3"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Fatalf("Columns = %v, want %v", tbl.Columns, want)
	}
}
