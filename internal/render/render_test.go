package render

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/orangejuice2508/algorithmic-pricing/internal/grid"
	"github.com/orangejuice2508/algorithmic-pricing/internal/stats"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func smallStyle() Style {
	s := DefaultStyle()
	s.Width, s.Height = 480, 320
	return s
}

func TestLineRendersPNG(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	buf, err := Line(LineConfig{
		Title:  "SIM-P-2",
		XLabel: "Gamma",
		YLabel: "Phi",
		Style:  smallStyle(),
		Series: []Series{
			{Name: "SIM-P-2", X: x, Y: []float64{0.1, 0.4, 0.3, 0.8}},
			ReferenceLine("upper bound", x, 1),
		},
		Legend: true,
	})
	require.NoError(t, err)
	require.Equal(t, pngMagic, buf[:4])
}

func TestVerticalMarkerSpansSeriesExtent(t *testing.T) {
	series := []Series{
		{Name: "firm 1", X: []float64{1, 2, 3}, Y: []float64{1.0, 1.4, 1.2}},
		{Name: "firm 2", X: []float64{1, 2, 3}, Y: []float64{0.8, 1.6, 1.3}},
	}
	m := VerticalMarker("forced deviation", 2, series)
	require.Equal(t, []float64{2, 2}, m.X)
	require.Equal(t, []float64{0.8, 1.6}, m.Y)
	require.True(t, m.Dashed)
	require.Equal(t, drawing.ColorBlack, m.Color)
}

func TestLineRejectsBadSeries(t *testing.T) {
	_, err := Line(LineConfig{Style: smallStyle()})
	require.Error(t, err)

	_, err = Line(LineConfig{
		Style:  smallStyle(),
		Series: []Series{{Name: "ragged", X: []float64{1, 2}, Y: []float64{1}}},
	})
	require.Error(t, err)
}

func TestBoxPlotRendersPNG(t *testing.T) {
	b1, err := stats.Box([]float64{0.1, 0.5, 0.4, 0.9, 0.7})
	require.NoError(t, err)
	b2, err := stats.Box([]float64{1.1, 1.5, 1.4, 1.9, 1.7})
	require.NoError(t, err)

	buf, err := BoxPlot(BoxConfig{
		YLabel: "Phi",
		XLabel: "Treatment",
		Style:  smallStyle(),
		Boxes: []NamedBox{
			{Name: "SIM-P-2", Stats: b1},
			{Name: "SIM-Q-2", Stats: b2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, pngMagic, buf[:4])
}

func TestHeatmapRendersPNG(t *testing.T) {
	g := &grid.Grid{
		X: []float64{0.05, 0.10, 0.15},
		Y: []float64{0.80, 0.90, 0.99},
		Z: [][]float64{
			{0.0, 0.5, 1.0},
			{0.5, 1.0, 1.5},
			{1.0, 1.5, 2.0},
		},
	}

	buf, err := Heatmap(HeatmapConfig{
		XLabel:       "alpha",
		YLabel:       "delta",
		Style:        smallStyle(),
		Grid:         g,
		Scale:        HeatScale(),
		ZMin:         0,
		ZMax:         2,
		Contours:     g.Contours(1.0),
		ContourColor: drawing.ColorBlack,
	})
	require.NoError(t, err)
	require.Equal(t, pngMagic, buf[:4])
}

func TestHeatmapEmptyGrid(t *testing.T) {
	_, err := Heatmap(HeatmapConfig{Style: smallStyle(), Grid: &grid.Grid{}})
	require.Error(t, err)
}

func TestColorScaleInterpolation(t *testing.T) {
	cs := ColorScale{
		{0, drawing.Color{R: 0, G: 0, B: 0, A: 255}},
		{1, drawing.Color{R: 200, G: 100, B: 50, A: 255}},
	}
	mid := cs.At(0.5)
	require.Equal(t, uint8(100), mid.R)
	require.Equal(t, uint8(50), mid.G)
	require.Equal(t, uint8(25), mid.B)

	// Clamped outside [0, 1].
	require.Equal(t, cs.At(0), cs.At(-2))
	require.Equal(t, cs.At(1), cs.At(5))
}
