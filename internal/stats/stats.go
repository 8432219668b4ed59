// Package stats computes the descriptive and regression statistics the
// analysis commands report: means, conditional means over filtered subsets,
// box summaries and ordinary least squares with inference.
package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
)

// EmptyInputError indicates an aggregation over zero values. Surfacing this
// lets callers distinguish "no data" from data that averages to zero.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s over empty input", e.Op)
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &EmptyInputError{Op: "mean"}
	}
	return stat.Mean(values, nil), nil
}

// ColumnMean returns the mean of a numeric column.
func ColumnMean(tbl *dataset.Table, column string) (float64, error) {
	vals, err := tbl.Floats(column)
	if err != nil {
		return 0, err
	}
	return Mean(vals)
}

// ConditionalMean returns the mean of column restricted to rows for which
// keep returns true. A predicate matching zero rows fails with an
// EmptyInputError even when the unfiltered table is non-empty.
func ConditionalMean(tbl *dataset.Table, column string, keep func(row int) bool) (float64, error) {
	vals, err := tbl.Floats(column)
	if err != nil {
		return 0, err
	}
	var sel []float64
	for i, v := range vals {
		if keep(i) {
			sel = append(sel, v)
		}
	}
	if len(sel) == 0 {
		return 0, &EmptyInputError{Op: "conditional mean"}
	}
	return stat.Mean(sel, nil), nil
}

// BoxStats summarises a sample the way a box plot draws it. Whiskers follow
// the Tukey convention: the furthest data points within 1.5 IQR of the box.
type BoxStats struct {
	N             int
	Min, Max      float64
	Q1, Median, Q3 float64
	Mean          float64
	LowWhisker    float64
	HighWhisker   float64
}

// Box computes a BoxStats over values.
func Box(values []float64) (BoxStats, error) {
	if len(values) == 0 {
		return BoxStats{}, &EmptyInputError{Op: "box summary"}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	b := BoxStats{
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Mean:   stat.Mean(sorted, nil),
	}
	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-1.5*iqr, b.Q3+1.5*iqr
	b.LowWhisker, b.HighWhisker = b.Max, b.Min
	for _, v := range sorted {
		if v >= lo && v < b.LowWhisker {
			b.LowWhisker = v
		}
		if v <= hi && v > b.HighWhisker {
			b.HighWhisker = v
		}
	}
	return b, nil
}
