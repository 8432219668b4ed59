// Package grid models the alpha-delta result surface of a treatment: a
// rectangular field of one measured quantity (collusion degree or coordination
// percentage) sampled over a learning-rate axis and a discount-factor axis.
package grid

import (
	"fmt"
	"strconv"

	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
)

// Grid is a rectangular scalar field. Z[i][j] is the value at Y[i], X[j].
// Axis values keep the order of the source table; exported surfaces are
// written with ascending parameter values.
type Grid struct {
	X []float64
	Y []float64
	Z [][]float64
}

// FromWide builds a grid from a wide table: the id column becomes the X axis
// and each remaining column becomes one Y level, its name parsed as the
// level's numeric value (e.g. column "0.95" for delta = 0.95).
func FromWide(wide *dataset.Table, idColumn string) (*Grid, error) {
	x, err := wide.Floats(idColumn)
	if err != nil {
		return nil, err
	}

	g := &Grid{X: x}
	for _, name := range wide.ColumnNames() {
		if name == idColumn {
			continue
		}
		level, err := strconv.ParseFloat(name, 64)
		if err != nil {
			return nil, fmt.Errorf("parse level from column %q: %w", name, err)
		}
		vals, err := wide.Floats(name)
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(vals))
		copy(row, vals)
		g.Y = append(g.Y, level)
		g.Z = append(g.Z, row)
	}
	return g, nil
}

// MinMax returns the smallest and largest Z value.
func (g *Grid) MinMax() (lo, hi float64) {
	first := true
	for _, row := range g.Z {
		for _, v := range row {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	return lo, hi
}

// Values returns all Z values row by row.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, len(g.Y)*len(g.X))
	for _, row := range g.Z {
		out = append(out, row...)
	}
	return out
}

// MooreSmooth returns a new grid where each cell is the mean of itself and
// its Moore neighborhood (the up to eight surrounding cells). Border cells
// average over the neighbors that exist.
func (g *Grid) MooreSmooth() *Grid {
	rows, cols := len(g.Y), len(g.X)
	out := &Grid{
		X: append([]float64(nil), g.X...),
		Y: append([]float64(nil), g.Y...),
		Z: make([][]float64, rows),
	}
	for i := 0; i < rows; i++ {
		out.Z[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			var sum float64
			var n int
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					ni, nj := i+di, j+dj
					if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
						continue
					}
					sum += g.Z[ni][nj]
					n++
				}
			}
			out.Z[i][j] = sum / float64(n)
		}
	}
	return out
}
