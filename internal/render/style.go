// Package render draws the analysis charts: multi-series line charts and box
// plots through go-chart, and alpha-delta heatmaps rasterised directly with a
// ported color scale since go-chart has no heatmap type.
package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Style carries the chart appearance knobs shared by every renderer. The
// defaults mirror the export settings the result figures were produced with
// (1920x1080 PNG output).
type Style struct {
	Width  int
	Height int
	// Palette assigns series colors in order, one per treatment.
	Palette []drawing.Color
}

// DefaultStyle returns the standard figure style.
func DefaultStyle() Style {
	return Style{
		Width:   1920,
		Height:  1080,
		Palette: defaultPalette(),
	}
}

// Color returns the i-th palette color, cycling when there are more series
// than colors.
func (s Style) Color(i int) drawing.Color {
	if len(s.Palette) == 0 {
		return drawing.ColorBlack
	}
	return s.Palette[i%len(s.Palette)]
}

func defaultPalette() []drawing.Color {
	return []drawing.Color{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
		{R: 227, G: 119, B: 194, A: 255},
		{R: 127, G: 127, B: 127, A: 255},
		{R: 188, G: 189, B: 34, A: 255},
		{R: 23, G: 190, B: 207, A: 255},
	}
}

// ColorStop anchors a color at a position in [0, 1].
type ColorStop struct {
	Pos   float64
	Color drawing.Color
}

// ColorScale interpolates colors linearly between stops.
type ColorScale []ColorStop

// At returns the scale color for t, clamped to [0, 1].
func (cs ColorScale) At(t float64) drawing.Color {
	if len(cs) == 0 {
		return drawing.ColorBlack
	}
	if t <= cs[0].Pos {
		return cs[0].Color
	}
	for i := 1; i < len(cs); i++ {
		if t > cs[i].Pos {
			continue
		}
		lo, hi := cs[i-1], cs[i]
		span := hi.Pos - lo.Pos
		if span == 0 {
			return hi.Color
		}
		f := (t - lo.Pos) / span
		return drawing.Color{
			R: lerpByte(lo.Color.R, hi.Color.R, f),
			G: lerpByte(lo.Color.G, hi.Color.G, f),
			B: lerpByte(lo.Color.B, hi.Color.B, f),
			A: 255,
		}
	}
	return cs[len(cs)-1].Color
}

func lerpByte(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + f*(float64(b)-float64(a)) + 0.5)
}

// HeatScale is the white-red-yellow scale the collusion heatmaps use, with
// white at phi = 0 (competitive), saturated red at the midpoint and yellow at
// phi = 2.
func HeatScale() ColorScale {
	return ColorScale{
		{0, drawing.Color{R: 255, G: 255, B: 255, A: 255}},
		{0.125, drawing.Color{R: 255, G: 210, B: 194, A: 255}},
		{0.25, drawing.Color{R: 255, G: 156, B: 126, A: 255}},
		{0.375, drawing.Color{R: 255, G: 105, B: 71, A: 255}},
		{0.5, drawing.Color{R: 255, G: 44, B: 9, A: 255}},
		{0.625, drawing.Color{R: 255, G: 109, B: 0, A: 255}},
		{0.75, drawing.Color{R: 255, G: 158, B: 0, A: 255}},
		{0.875, drawing.Color{R: 255, G: 212, B: 0, A: 255}},
		{1, drawing.Color{R: 255, G: 252, B: 1, A: 255}},
	}
}
