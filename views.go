package main

import (
	"visitordash/chart"
	"visitordash/config"
	"visitordash/dataset"
	"visitordash/domain/models"
)

// View is one pre-wired dashboard section: a chart builder invocation
// with fixed parameters plus static commentary.
type View struct {
	Name    string
	Title   string
	Comment string
	Build   func(ds *dataset.Dataset) (*models.ChartSpec, error)
}

func dashboardViews(cfg *config.Config) []View {
	return []View{
		{
			Name:    "ports",
			Title:   "Ports of entry",
			Comment: "Share of arrivals per port, all visitors against UK visitors. Zero-share ports are dropped.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				return categoryShare(ds, "Port of Entry", chart.Options{DropZero: true, Horizontal: true})
			},
		},
		{
			Name:    "purpose",
			Title:   "Main purpose of visit",
			Comment: "Why visitors come: holiday, business, visiting relatives. Shares within each group.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				return categoryShare(ds, "purpose", chart.Options{})
			},
		},
		{
			Name:    "age",
			Title:   "Age distribution (overall)",
			Comment: "Synthesized from the male and female age brackets, row-aligned mean of the two.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				// Age brackets keep their source order instead of a value sort.
				order := itemsOf(ds.Summary, dataset.CategoryOverallAge)
				return categoryShare(ds, dataset.CategoryOverallAge, chart.Options{ItemOrder: order})
			},
		},
		{
			Name:    "age-male",
			Title:   "Age distribution, male visitors",
			Comment: "Per-bracket share of male visitors.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				order := itemsOf(ds.Summary, dataset.CategoryMale)
				return categoryShare(ds, dataset.CategoryMale, chart.Options{ItemOrder: order})
			},
		},
		{
			Name:    "age-female",
			Title:   "Age distribution, female visitors",
			Comment: "Per-bracket share of female visitors.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				order := itemsOf(ds.Summary, dataset.CategoryFemale)
				return categoryShare(ds, dataset.CategoryFemale, chart.Options{ItemOrder: order})
			},
		},
		{
			Name:    "transport-rate",
			Title:   "Transport spending participation",
			Comment: "Share of visitors spending on transport items at all.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				return chart.FilteredExpenditureBar(ds.Expenditure,
					[]string{"airfare", "railway", "bus", "taxi", "rental"},
					models.MetricRate,
					chart.Options{Title: "Transport spending participation", Currency: cfg.CurrencyUnit})
			},
		},
		{
			Name:    "spend-price",
			Title:   "Average spend per paying visitor",
			Comment: "Average price paid on the big-ticket items, among visitors who paid.",
			Build: func(ds *dataset.Dataset) (*models.ChartSpec, error) {
				return chart.FilteredExpenditureBar(ds.Expenditure,
					[]string{"accommodation", "food", "shopping", "entertainment"},
					models.MetricPrice,
					chart.Options{Title: "Average spend per paying visitor", Currency: cfg.CurrencyUnit})
			},
		},
	}
}

// categoryShare resolves a requested category and builds its paired
// share chart. Resolution failures surface the available categories.
func categoryShare(ds *dataset.Dataset, requested string, o chart.Options) (*models.ChartSpec, error) {
	category, err := dataset.ResolveCategory(ds.Summary, requested)
	if err != nil {
		return nil, err
	}
	return chart.PairedShareBar(ds.Summary, category, o)
}

func itemsOf(t *dataset.Table, category string) []string {
	item, ok := t.ItemColumn()
	if !ok {
		return nil
	}
	return t.Filter(func(r dataset.Row) bool {
		return r.String(dataset.CategoryColumn) == category
	}).Distinct(item)
}

func findView(views []View, name string) (View, bool) {
	for _, v := range views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}
