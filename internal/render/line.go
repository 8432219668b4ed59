package render

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Series is one line on a chart.
type Series struct {
	Name   string
	X      []float64
	Y      []float64
	Color  drawing.Color
	Width  float64
	Dashed bool
}

// Range pins an axis to fixed bounds.
type Range struct {
	Min, Max float64
}

// LineConfig describes a multi-series line chart.
type LineConfig struct {
	Title  string
	XLabel string
	YLabel string
	Style  Style
	Series []Series
	YRange *Range
	Legend bool
}

// Line renders a line chart to PNG bytes.
func Line(cfg LineConfig) ([]byte, error) {
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("line chart: no series")
	}

	var series []chart.Series
	for i, s := range cfg.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %d x values against %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.X) < 2 {
			return nil, fmt.Errorf("series %q: need at least two points", s.Name)
		}
		st := chart.Style{
			StrokeColor: s.Color,
			StrokeWidth: s.Width,
		}
		if st.StrokeColor.IsZero() {
			st.StrokeColor = cfg.Style.Color(i)
		}
		if st.StrokeWidth == 0 {
			st.StrokeWidth = 2.0
		}
		if s.Dashed {
			st.StrokeDashArray = []float64{12.0, 6.0}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   st,
		})
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		Width:      cfg.Style.Width,
		Height:     cfg.Style.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: cfg.XLabel},
		YAxis:      chart.YAxis{Name: cfg.YLabel},
		Series:     series,
	}
	if cfg.YRange != nil {
		ch.YAxis.Range = &chart.ContinuousRange{Min: cfg.YRange.Min, Max: cfg.YRange.Max}
	}
	if cfg.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	return buf.Bytes(), nil
}

// VerticalMarker builds a dashed vertical line at x spanning the y extent of
// the given series, used to flag single events such as a forced deviation.
func VerticalMarker(name string, x float64, series []Series) Series {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Y {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return Series{
		Name:   name,
		X:      []float64{x, x},
		Y:      []float64{lo, hi},
		Color:  drawing.ColorBlack,
		Width:  1.5,
		Dashed: true,
	}
}

// ReferenceLine builds a dashed horizontal line over the x extent of an
// existing series, used for Nash benchmarks and the 0/1 collusion bounds.
func ReferenceLine(name string, x []float64, level float64) Series {
	xs := []float64{x[0], x[len(x)-1]}
	return Series{
		Name:   name,
		X:      xs,
		Y:      []float64{level, level},
		Color:  drawing.ColorBlack,
		Width:  1.5,
		Dashed: true,
	}
}
