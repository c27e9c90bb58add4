package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"visitordash/dataset"
)

// GenerateTablePreview renders the first rows of a table as plain text
// for the data-info page and the startup log.
func GenerateTablePreview(t *dataset.Table, limit int) string {
	w := table.NewWriter()

	header := table.Row{}
	for _, col := range t.Columns {
		header = append(header, col)
	}
	w.AppendHeader(header)

	for i, row := range t.Rows {
		if i >= limit {
			break
		}
		cells := table.Row{}
		for _, col := range t.Columns {
			switch v := row[col].(type) {
			case float64:
				cells = append(cells, fmt.Sprintf("%.1f", v))
			case nil:
				cells = append(cells, "")
			default:
				cells = append(cells, v)
			}
		}
		w.AppendRows([]table.Row{cells})
	}
	if t.Len() > limit {
		w.AppendFooter(table.Row{fmt.Sprintf("... %d more rows", t.Len()-limit)})
	}

	w.SetStyle(table.StyleDefault)
	return w.Render()
}

// GenerateCategoryTable lists the distinct categories of the summary
// table with their row counts.
func GenerateCategoryTable(t *dataset.Table) string {
	counts := map[string]int{}
	for _, row := range t.Rows {
		counts[row.String(dataset.CategoryColumn)]++
	}

	w := table.NewWriter()
	w.AppendHeader(table.Row{"Category", "Rows"})
	for _, c := range t.Distinct(dataset.CategoryColumn) {
		w.AppendRows([]table.Row{{c, counts[c]}})
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}
