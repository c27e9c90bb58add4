package chart

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"visitordash/domain/models"
)

// Render turns a chart spec into a go-echarts bar chart. All pixel-level
// concerns live here and in the ECharts runtime; the spec stays purely
// declarative.
func Render(spec *models.ChartSpec) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Title,
			Subtitle: fmt.Sprintf("%s in %s", spec.ValueField, spec.Unit),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: fmt.Sprintf("%dpx", spec.Height),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: fmt.Sprintf("%s (%s)", spec.ValueField, spec.Unit),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      spec.ItemField,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 30},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)

	items := spec.ItemOrder
	if len(items) == 0 {
		items = spec.Items()
	}
	bar.SetXAxis(items)
	for _, group := range []string{models.GroupAll, models.GroupUK} {
		series := make([]opts.BarData, 0, len(items))
		for _, v := range spec.SeriesValues(group, items) {
			series = append(series, opts.BarData{Value: roundTo(v, spec.Decimals)})
		}
		if spec.Stacked {
			bar.AddSeries(group, series, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
		} else {
			bar.AddSeries(group, series)
		}
	}
	if spec.Horizontal {
		bar.XYReversal()
	}
	return bar
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
