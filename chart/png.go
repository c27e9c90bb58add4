package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"visitordash/domain/models"
)

var groupFill = map[string]drawing.Color{
	models.GroupAll: drawing.ColorBlue.WithAlpha(180),
	models.GroupUK:  drawing.ColorRed.WithAlpha(180),
}

// RenderPNG draws a chart spec as a PNG for download. Groups are laid
// out as adjacent bars per item, All then UK.
func RenderPNG(spec *models.ChartSpec) ([]byte, error) {
	items := spec.ItemOrder
	if len(items) == 0 {
		items = spec.Items()
	}

	var bars []chart.Value
	maxValue := 0.0
	for _, item := range items {
		for _, group := range []string{models.GroupAll, models.GroupUK} {
			v := spec.SeriesValues(group, []string{item})[0]
			if v > maxValue {
				maxValue = v
			}
			bars = append(bars, chart.Value{
				Value: v,
				Label: fmt.Sprintf("%s (%s)", item, group),
				Style: chart.Style{FillColor: groupFill[group]},
			})
		}
	}
	if len(bars) == 0 {
		return nil, &EmptyResultError{}
	}

	graph := chart.BarChart{
		Title: spec.Title,
		Background: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorFromHex("efefef"),
			StrokeWidth: 1,
			Padding: chart.Box{
				Top:    50,
				Bottom: paddingForLabels(bars),
			},
		},
		Height:   768,
		Width:    widthForBars(len(bars)),
		BarWidth: 40,
		Bars:     bars,
		XAxis: chart.Style{
			StrokeWidth:         2,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 88,
			FontSize:            14,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("%s (%s)", spec.ValueField, spec.Unit),
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxValue,
			},
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
				FontSize:    14,
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func widthForBars(count int) int {
	width := count*60 + 200
	if width < 800 {
		width = 800
	}
	return width
}

func paddingForLabels(values []chart.Value) int {
	longest := 0
	for _, v := range values {
		if len(v.Label) > longest {
			longest = len(v.Label)
		}
	}
	return longest * 8
}
