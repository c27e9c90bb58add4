package models

// MetricKind names the semantic role encoded in a metric column header.
type MetricKind string

const (
	MetricShare    MetricKind = "share"
	MetricRate     MetricKind = "rate"
	MetricPrice    MetricKind = "price"
	MetricSpending MetricKind = "spending"
	MetricNights   MetricKind = "nights"
	MetricCount    MetricKind = "count"
)

// MetricKinds is the full token set the cleaner and the schema resolver
// recognize inside normalized column names.
var MetricKinds = []MetricKind{
	MetricShare, MetricRate, MetricPrice, MetricSpending, MetricNights, MetricCount,
}

// Visitor group display labels used in melted chart rows.
const (
	GroupAll = "All"
	GroupUK  = "UK"
)

// LongRow is one observation of the long-form (melted) chart layout:
// one row per (Item, Group) pair instead of one row per Item with two
// value columns.
type LongRow struct {
	Item  string
	Group string
	Value float64
}

// ChartSpec is the declarative contract handed to the rendering layer.
// The core never draws pixels; it only fills in data rows and bindings.
type ChartSpec struct {
	Title      string
	Rows       []LongRow
	ItemField  string // axis field holding Item labels
	ValueField string // axis field holding the metric value
	GroupField string // color/offset field
	Unit       string // "%" or a currency unit
	ItemOrder  []string
	Tooltip    []string // fields listed in the tooltip
	Decimals   int      // value rounding for display
	Height     int      // pixels
	Horizontal bool     // items on the Y axis
	Stacked    bool
}

// Items returns the distinct item labels of the spec in row order.
func (s *ChartSpec) Items() []string {
	seen := map[string]bool{}
	items := []string{}
	for _, r := range s.Rows {
		if !seen[r.Item] {
			seen[r.Item] = true
			items = append(items, r.Item)
		}
	}
	return items
}

// SeriesValues returns the values of one group aligned to the given item
// order. Items with no row in the group get a zero.
func (s *ChartSpec) SeriesValues(group string, items []string) []float64 {
	byItem := map[string]float64{}
	for _, r := range s.Rows {
		if r.Group == group {
			byItem[r.Item] = r.Value
		}
	}
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = byItem[item]
	}
	return values
}
