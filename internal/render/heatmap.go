package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/orangejuice2508/algorithmic-pricing/internal/grid"
)

// HeatmapConfig describes a rasterised surface chart with optional iso-line
// overlays.
type HeatmapConfig struct {
	Title  string
	XLabel string
	YLabel string
	Style  Style
	Grid   *grid.Grid
	Scale  ColorScale
	// ZMin/ZMax pin the color scale; both zero means use the data extent.
	ZMin, ZMax float64
	// YTicks selects which Y levels get labels; empty labels every level.
	YTicks       []float64
	Contours     []grid.Segment
	ContourColor drawing.Color
}

// Margins around the cell area: labels left/bottom, colorbar right.
const (
	hmLeft   = 70
	hmRight  = 110
	hmTop    = 40
	hmBottom = 50
)

// Heatmap renders the surface to PNG bytes: one filled rectangle per grid
// cell, contour segments drawn on top, a colorbar at the right edge.
func Heatmap(cfg HeatmapConfig) ([]byte, error) {
	g := cfg.Grid
	if g == nil || len(g.X) == 0 || len(g.Y) == 0 {
		return nil, fmt.Errorf("heatmap: empty grid")
	}

	zmin, zmax := cfg.ZMin, cfg.ZMax
	if zmin == 0 && zmax == 0 {
		zmin, zmax = g.MinMax()
	}
	if zmax == zmin {
		zmax = zmin + 1
	}

	w, h := cfg.Style.Width, cfg.Style.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), color.White)

	plot := image.Rect(hmLeft, hmTop, w-hmRight, h-hmBottom)
	xb := cellBounds(g.X)
	yb := cellBounds(g.Y)
	toPx := func(x float64) int {
		return plot.Min.X + int(float64(plot.Dx())*(x-xb[0])/(xb[len(xb)-1]-xb[0]))
	}
	// Y grows upward on the chart, downward on the image.
	toPy := func(y float64) int {
		return plot.Max.Y - int(float64(plot.Dy())*(y-yb[0])/(yb[len(yb)-1]-yb[0]))
	}

	for i := range g.Y {
		for j := range g.X {
			t := (g.Z[i][j] - zmin) / (zmax - zmin)
			c := cfg.Scale.At(clamp01(t))
			cell := image.Rect(toPx(xb[j]), toPy(yb[i+1]), toPx(xb[j+1]), toPy(yb[i]))
			fill(img, cell.Intersect(plot), toNRGBA(c))
		}
	}

	contourColor := cfg.ContourColor
	if contourColor.IsZero() {
		contourColor = drawing.ColorBlack
	}
	for _, s := range cfg.Contours {
		drawLine(img, toPx(s.X1), toPy(s.Y1), toPx(s.X2), toPy(s.Y2), toNRGBA(contourColor))
	}

	drawColorbar(img, image.Rect(w-hmRight+30, hmTop, w-hmRight+55, h-hmBottom), cfg.Scale, zmin, zmax)
	labelAxes(img, plot, g, cfg, toPx, toPy)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode heatmap: %w", err)
	}
	return buf.Bytes(), nil
}

// cellBounds returns len(centers)+1 cell edges: midpoints between samples,
// extended by a half step at both ends.
func cellBounds(centers []float64) []float64 {
	n := len(centers)
	if n == 1 {
		return []float64{centers[0] - 0.5, centers[0] + 0.5}
	}
	edges := make([]float64, n+1)
	edges[0] = centers[0] - (centers[1]-centers[0])/2
	for i := 1; i < n; i++ {
		edges[i] = (centers[i-1] + centers[i]) / 2
	}
	edges[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2
	return edges
}

func labelAxes(img *image.RGBA, plot image.Rectangle, g *grid.Grid, cfg HeatmapConfig, toPx, toPy func(float64) int) {
	// Thin out x labels so they stay readable on dense grids.
	step := 1
	if len(g.X) > 12 {
		step = len(g.X) / 12
	}
	for j := 0; j < len(g.X); j += step {
		drawText(img, toPx(g.X[j])-10, plot.Max.Y+18, formatTick(g.X[j]))
	}

	yticks := cfg.YTicks
	if len(yticks) == 0 {
		yticks = g.Y
	}
	for _, y := range yticks {
		drawText(img, plot.Min.X-45, toPy(y)+4, formatTick(y))
	}

	if cfg.XLabel != "" {
		drawText(img, (plot.Min.X+plot.Max.X)/2-4*len(cfg.XLabel), plot.Max.Y+36, cfg.XLabel)
	}
	if cfg.YLabel != "" {
		drawText(img, 8, plot.Min.Y-10, cfg.YLabel)
	}
	if cfg.Title != "" {
		drawText(img, (plot.Min.X+plot.Max.X)/2-4*len(cfg.Title), 20, cfg.Title)
	}
}

func drawColorbar(img *image.RGBA, r image.Rectangle, scale ColorScale, zmin, zmax float64) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := 1 - float64(y-r.Min.Y)/float64(r.Dy()-1)
		c := toNRGBA(scale.At(t))
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
	drawText(img, r.Max.X+4, r.Min.Y+6, formatTick(zmax))
	drawText(img, r.Max.X+4, r.Max.Y, formatTick(zmin))
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func clamp01(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}

func toNRGBA(c drawing.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawLine draws a 2px Bresenham line clipped to the image.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		img.Set(x, y, c)
		img.Set(x+1, y, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func drawText(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
