package dataset

import "strings"

// ResolveCategory maps a user-facing category name onto a Category value
// of the table. An exact match always wins; otherwise the first value in
// table order whose lowercase form contains the lowercase request is
// taken. No match at all fails with the full list of available
// categories, and the caller must not render a chart.
func ResolveCategory(t *Table, requested string) (string, error) {
	available := t.Distinct(CategoryColumn)
	for _, c := range available {
		if c == requested {
			return c, nil
		}
	}
	needle := strings.ToLower(requested)
	for _, c := range available {
		if strings.Contains(strings.ToLower(c), needle) {
			return c, nil
		}
	}
	return "", &UnknownCategoryError{Requested: requested, Available: available}
}
