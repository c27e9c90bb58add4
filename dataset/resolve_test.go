package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func categoryTable() *Table {
	tbl := NewTable("Category", "Item", "all_Share", "uk_Share")
	for _, c := range []string{"Main Purpose", "Port of Entry", "male", "female"} {
		tbl.Append(Row{"Category": c, "Item": "x", "all_Share": 1.0, "uk_Share": 1.0})
	}
	return tbl
}

func TestResolveCategory(t *testing.T) {
	tbl := categoryTable()

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"Exact match", "Port of Entry", "Port of Entry"},
		{"Substring match", "purpose", "Main Purpose"},
		{"Case-insensitive substring", "PORT", "Port of Entry"},
		{"First substring match in table order", "male", "male"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCategory(tbl, tt.requested)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// An exact match wins even when an earlier category would match as a
// substring: "male" is exact on "male", not substring on "female".
func TestResolveCategoryExactBeatsSubstring(t *testing.T) {
	tbl := NewTable("Category")
	tbl.Append(Row{"Category": "female"})
	tbl.Append(Row{"Category": "male"})

	got, err := ResolveCategory(tbl, "male")
	assert.NoError(t, err)
	assert.Equal(t, "male", got)
}

func TestResolveCategoryUnknown(t *testing.T) {
	tbl := categoryTable()

	_, err := ResolveCategory(tbl, "nonexistent")

	var unknown *UnknownCategoryError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.Requested)
	assert.Equal(t, []string{"Main Purpose", "Port of Entry", "male", "female"}, unknown.Available)
}
