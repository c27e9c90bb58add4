package chart

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"visitordash/dataset"
	"visitordash/domain/models"
)

// EmptyResultError reports a keyword filter that matched no rows. The
// chart is skipped with a notice instead of rendering empty.
type EmptyResultError struct {
	Keywords []string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no matching rows for keywords: %s", strings.Join(e.Keywords, ", "))
}

// Options are the display knobs of a chart builder. Everything is
// optional; zero values give a vertical grouped bar chart sorted
// descending by the All-group value.
type Options struct {
	Title      string
	ItemOrder  []string // explicit item order, wins over value sorting
	DropZero   bool     // drop items whose All value is not positive
	Horizontal bool
	Stacked    bool
	Height     int
	Currency   string // unit for price/spending metrics
}

// PairedShareBar builds the chart spec comparing the All and UK share
// of every item in one resolved category. The input table is never
// mutated; the builder works on a filtered copy.
func PairedShareBar(t *dataset.Table, category string, o Options) (*models.ChartSpec, error) {
	item, ok := t.ItemColumn()
	if !ok {
		return nil, &dataset.MissingColumnError{Group: "label", Kind: "item"}
	}
	pair, err := dataset.ResolveColumnPair(t, models.MetricShare)
	if err != nil {
		return nil, err
	}

	subset := t.Filter(func(r dataset.Row) bool {
		if r.String(dataset.CategoryColumn) != category {
			return false
		}
		return !o.DropZero || r.Float(pair.All) > 0
	})

	spec := newSpec(subset, item, pair, "Share", "%", o)
	if spec.Title == "" {
		spec.Title = fmt.Sprintf("%s: All vs UK visitors", category)
	}
	return spec, nil
}

// FilteredExpenditureBar builds the chart spec for the expenditure items
// whose label matches any of the keywords (case-insensitive substring
// OR), for the requested metric kind (rate or price). An empty filter
// result short-circuits with EmptyResultError.
func FilteredExpenditureBar(t *dataset.Table, keywords []string, kind models.MetricKind, o Options) (*models.ChartSpec, error) {
	item, ok := t.ItemColumn()
	if !ok {
		return nil, &dataset.MissingColumnError{Group: "label", Kind: "item"}
	}
	pair, err := dataset.ResolveColumnPair(t, kind)
	if err != nil {
		return nil, err
	}

	matcher, err := keywordMatcher(keywords)
	if err != nil {
		return nil, err
	}
	subset := t.Filter(func(r dataset.Row) bool {
		return matcher.MatchString(r.String(item))
	})
	if subset.Len() == 0 {
		return nil, &EmptyResultError{Keywords: keywords}
	}

	value := titleCase(string(kind))
	spec := newSpec(subset, item, pair, value, unitFor(kind, o), o)
	if spec.Title == "" {
		spec.Title = fmt.Sprintf("Expenditure %s: All vs UK visitors", strings.ToLower(value))
	}
	return spec, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func unitFor(kind models.MetricKind, o Options) string {
	switch kind {
	case models.MetricPrice, models.MetricSpending:
		if o.Currency != "" {
			return o.Currency
		}
		return "¥"
	default:
		return "%"
	}
}

func keywordMatcher(keywords []string) (*regexp.Regexp, error) {
	if len(keywords) == 0 {
		return nil, &EmptyResultError{}
	}
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.Compile("(?i)(" + strings.Join(quoted, "|") + ")")
}

// newSpec melts the wide subset into long form and fills in the axis,
// color and tooltip bindings.
func newSpec(subset *dataset.Table, item string, pair dataset.ColumnPair, value, unit string, o Options) *models.ChartSpec {
	spec := &models.ChartSpec{
		Title:      o.Title,
		Rows:       Melt(subset, item, pair),
		ItemField:  "Item",
		ValueField: value,
		GroupField: "Group",
		Unit:       unit,
		ItemOrder:  o.ItemOrder,
		Tooltip:    []string{"Item", "Group", value},
		Decimals:   1,
		Height:     o.Height,
		Horizontal: o.Horizontal,
		Stacked:    o.Stacked,
	}
	if spec.Height == 0 {
		spec.Height = 500
	}
	sortSpec(spec)
	return spec
}

// Melt reshapes one row per item with two value columns into two long
// rows per item, All before UK.
func Melt(t *dataset.Table, item string, pair dataset.ColumnPair) []models.LongRow {
	rows := make([]models.LongRow, 0, 2*t.Len())
	for _, r := range t.Rows {
		rows = append(rows,
			models.LongRow{Item: r.String(item), Group: models.GroupAll, Value: r.Float(pair.All)},
			models.LongRow{Item: r.String(item), Group: models.GroupUK, Value: r.Float(pair.UK)},
		)
	}
	return rows
}

// sortSpec orders the melted rows: by the explicit item order when one
// is supplied, otherwise descending by the All-group value. Within an
// item the All row stays before the UK row.
func sortSpec(spec *models.ChartSpec) {
	rank := map[string]int{}
	if len(spec.ItemOrder) > 0 {
		for i, item := range spec.ItemOrder {
			rank[item] = i
		}
		// Items outside the explicit order keep their position after it.
		next := len(spec.ItemOrder)
		for _, r := range spec.Rows {
			if _, ok := rank[r.Item]; !ok {
				rank[r.Item] = next
				next++
			}
		}
	} else {
		allValue := map[string]float64{}
		items := []string{}
		for _, r := range spec.Rows {
			if r.Group != models.GroupAll {
				continue
			}
			if _, seen := allValue[r.Item]; !seen {
				items = append(items, r.Item)
			}
			allValue[r.Item] = r.Value
		}
		sort.SliceStable(items, func(i, j int) bool {
			return allValue[items[i]] > allValue[items[j]]
		})
		for i, item := range items {
			rank[item] = i
		}
	}
	sort.SliceStable(spec.Rows, func(i, j int) bool {
		return rank[spec.Rows[i].Item] < rank[spec.Rows[j].Item]
	})
	if len(spec.ItemOrder) == 0 {
		spec.ItemOrder = spec.Items()
	}
}
