package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/orangejuice2508/algorithmic-pricing/internal/stats"
)

// NamedBox is one box on a box plot.
type NamedBox struct {
	Name  string
	Stats stats.BoxStats
	Color drawing.Color
}

// BoxConfig describes a box plot with one box per name (treatment).
type BoxConfig struct {
	Title  string
	XLabel string
	YLabel string
	Style  Style
	Boxes  []NamedBox
}

// boxHalfWidth is the box half-width in x-axis units; boxes sit at integer
// positions 1..n.
const boxHalfWidth = 0.3

// BoxPlot renders a box plot to PNG bytes. go-chart has no box series type,
// so each box is drawn as a bundle of two-point line segments: the quartile
// box, the median, a dashed mean line and Tukey whiskers with caps.
func BoxPlot(cfg BoxConfig) ([]byte, error) {
	if len(cfg.Boxes) == 0 {
		return nil, fmt.Errorf("box plot: no boxes")
	}

	var series []chart.Series
	ticks := []chart.Tick{{Value: 0.5, Label: ""}}
	for i, b := range cfg.Boxes {
		color := b.Color
		if color.IsZero() {
			color = cfg.Style.Color(i)
		}
		series = append(series, boxSeries(float64(i+1), b.Stats, color)...)
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: b.Name})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(cfg.Boxes)) + 0.5, Label: ""})

	ch := chart.Chart{
		Title:      cfg.Title,
		Width:      cfg.Style.Width,
		Height:     cfg.Style.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  cfg.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(cfg.Boxes)) + 0.5},
		},
		YAxis:  chart.YAxis{Name: cfg.YLabel},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render box plot: %w", err)
	}
	return buf.Bytes(), nil
}

func boxSeries(center float64, b stats.BoxStats, color drawing.Color) []chart.Series {
	left, right := center-boxHalfWidth, center+boxHalfWidth
	capLeft, capRight := center-boxHalfWidth/2, center+boxHalfWidth/2

	solid := chart.Style{StrokeColor: color, StrokeWidth: 2.0}
	dashed := chart.Style{StrokeColor: color, StrokeWidth: 1.5, StrokeDashArray: []float64{6.0, 4.0}}

	segment := func(st chart.Style, x1, y1, x2, y2 float64) chart.Series {
		return chart.ContinuousSeries{
			XValues: []float64{x1, x2},
			YValues: []float64{y1, y2},
			Style:   st,
		}
	}

	return []chart.Series{
		// Quartile box.
		segment(solid, left, b.Q1, right, b.Q1),
		segment(solid, left, b.Q3, right, b.Q3),
		segment(solid, left, b.Q1, left, b.Q3),
		segment(solid, right, b.Q1, right, b.Q3),
		// Median and mean.
		segment(solid, left, b.Median, right, b.Median),
		segment(dashed, left, b.Mean, right, b.Mean),
		// Whiskers with caps.
		segment(solid, center, b.Q1, center, b.LowWhisker),
		segment(solid, center, b.Q3, center, b.HighWhisker),
		segment(solid, capLeft, b.LowWhisker, capRight, b.LowWhisker),
		segment(solid, capLeft, b.HighWhisker, capRight, b.HighWhisker),
	}
}
