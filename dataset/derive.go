package dataset

import "visitordash/domain/models"

// Category markers of the summary table.
const (
	CategoryColumn     = "Category"
	CategoryMale       = "male"
	CategoryFemale     = "female"
	CategoryOverallAge = "Age (Overall)"
)

// AppendOverallAge synthesizes the "Age (Overall)" category: one row per
// item present in both the male and female categories, with each share
// column set to the unweighted mean of the two source rows. The rows are
// appended to the table; nothing else is mutated. If either subset is
// empty the step is skipped and the table is returned unchanged.
func AppendOverallAge(t *Table) error {
	if !t.HasColumn(CategoryColumn) {
		return nil
	}
	item, ok := t.ItemColumn()
	if !ok {
		return nil
	}
	pair, err := ResolveColumnPair(t, models.MetricShare)
	if err != nil {
		return err
	}

	male := indexByItem(t, item, CategoryMale)
	female := indexByItem(t, item, CategoryFemale)
	if len(male.order) == 0 || len(female.order) == 0 {
		return nil
	}

	for _, label := range male.order {
		m := male.rows[label]
		f, both := female.rows[label]
		if !both {
			continue
		}
		t.Append(Row{
			CategoryColumn: CategoryOverallAge,
			item:           label,
			pair.All:       (m.Float(pair.All) + f.Float(pair.All)) / 2,
			pair.UK:        (m.Float(pair.UK) + f.Float(pair.UK)) / 2,
		})
	}
	return nil
}

type itemIndex struct {
	order []string
	rows  map[string]Row
}

// indexByItem collects the rows of one category keyed by item label,
// keeping table order. On duplicate labels the first row wins.
func indexByItem(t *Table, itemColumn, category string) itemIndex {
	idx := itemIndex{rows: map[string]Row{}}
	for _, row := range t.Rows {
		if row.String(CategoryColumn) != category {
			continue
		}
		label := row.String(itemColumn)
		if _, dup := idx.rows[label]; dup {
			continue
		}
		idx.rows[label] = row
		idx.order = append(idx.order, label)
	}
	return idx
}
