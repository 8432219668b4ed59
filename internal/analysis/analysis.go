package analysis

import (
	"fmt"
	"strings"

	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/stats"
)

// CollusionSummary is the per-treatment digest printed alongside the theta
// and market-size charts: mean collusion degree, mean coordination
// percentage, and the collusion degree conditioned on coordinative runs.
type CollusionSummary struct {
	Treatment             Treatment
	MeanDegree            float64
	MeanCoordination      float64
	ConditionalMeanDegree float64
}

// Summarize computes a CollusionSummary over a result table. Runs count as
// coordinative when coordCol exceeds threshold; a treatment without a single
// coordinative run surfaces the underlying EmptyInputError rather than a NaN.
func Summarize(tbl *dataset.Table, tr Treatment, degreeCol, coordCol string, threshold float64) (CollusionSummary, error) {
	s := CollusionSummary{Treatment: tr}

	var err error
	if s.MeanDegree, err = stats.ColumnMean(tbl, degreeCol); err != nil {
		return s, fmt.Errorf("%s: %w", tr, err)
	}
	if s.MeanCoordination, err = stats.ColumnMean(tbl, coordCol); err != nil {
		return s, fmt.Errorf("%s: %w", tr, err)
	}

	coord, err := tbl.Floats(coordCol)
	if err != nil {
		return s, fmt.Errorf("%s: %w", tr, err)
	}
	s.ConditionalMeanDegree, err = stats.ConditionalMean(tbl, degreeCol, func(i int) bool {
		return coord[i] > threshold
	})
	if err != nil {
		return s, fmt.Errorf("%s: %w", tr, err)
	}
	return s, nil
}

func (s CollusionSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Treatment)
	fmt.Fprintf(&b, "  mean degree of tacit collusion:        %.4f\n", s.MeanDegree)
	fmt.Fprintf(&b, "  mean percentage of coordination:       %.4f\n", s.MeanCoordination)
	fmt.Fprintf(&b, "  conditional mean degree (coordinative): %.4f\n", s.ConditionalMeanDegree)
	return b.String()
}

// TrendFit regresses yCol on xCol over the whole table.
func TrendFit(tbl *dataset.Table, xCol, yCol string) (*stats.RegressionResult, error) {
	x, err := tbl.Floats(xCol)
	if err != nil {
		return nil, err
	}
	y, err := tbl.Floats(yCol)
	if err != nil {
		return nil, err
	}
	return stats.OLS(x, y)
}

// MeltSurface reshapes a wide alpha-delta surface table into long form with
// the given value name.
func MeltSurface(wide *dataset.Table, valueName string) (*dataset.Table, error) {
	return dataset.Melt(wide, ColAlpha, ColDelta, valueName)
}

// SurfaceDistribution loads the phi and percentage surface files of one
// treatment, melts both, attaches the coordination percentage onto the phi
// observations, and returns the joined long table. With coordinatedOnly set,
// rows are restricted to runs whose percentage exceeds threshold.
func SurfaceDistribution(phiPath, percPath string, coordinatedOnly bool, threshold float64) (*dataset.Table, error) {
	phiWide, err := dataset.ReadCSV(phiPath)
	if err != nil {
		return nil, err
	}
	phi, err := MeltSurface(phiWide, ColPhi)
	if err != nil {
		return nil, err
	}

	percWide, err := dataset.ReadCSV(percPath)
	if err != nil {
		return nil, err
	}
	perc, err := MeltSurface(percWide, ColPercentage)
	if err != nil {
		return nil, err
	}

	joined, err := dataset.Attach(phi, perc, ColAlpha, ColDelta, ColPercentage, ColPercentage)
	if err != nil {
		return nil, err
	}
	if !coordinatedOnly {
		return joined, nil
	}
	return joined.WhereGreater(ColPercentage, threshold)
}

// FirmColumns returns the decision-variable columns present in a time-series
// table, probing firm numbers upward from 1. Duopoly files carry two firms,
// triopoly files three.
func FirmColumns(tbl *dataset.Table, c Competition) []string {
	var cols []string
	for firm := 1; ; firm++ {
		name := FirmColumn(c, firm)
		if !tbl.HasColumn(name) {
			return cols
		}
		cols = append(cols, name)
	}
}
