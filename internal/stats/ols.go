package stats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
)

// RegressionResult holds an ordinary-least-squares fit of y on x with an
// intercept term, together with standard inference: standard errors from the
// residual variance, two-sided p-values under a t distribution with n-2
// degrees of freedom, and R-squared.
//
// No numerical degeneracy is papered over: zero-variance x or n == 2 leaves
// non-finite inference values for the analyst to see.
type RegressionResult struct {
	N         int
	Intercept float64
	Slope     float64

	InterceptStdErr float64
	SlopeStdErr     float64
	InterceptT      float64
	SlopeT          float64
	InterceptP      float64
	SlopeP          float64

	RSquared float64
}

// OLS fits y = intercept + slope*x by least squares. It requires two paired
// sequences of equal length with at least two points.
func OLS(x, y []float64) (*RegressionResult, error) {
	if len(x) != len(y) {
		return nil, &dataset.DimensionMismatchError{Want: len(x), Got: len(y)}
	}
	if len(x) < 2 {
		return nil, &dataset.DimensionMismatchError{Want: 2, Got: len(x)}
	}

	n := len(x)
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, intercept, slope)

	xbar := stat.Mean(x, nil)
	var ssRes, sxx float64
	for i := range x {
		res := y[i] - intercept - slope*x[i]
		ssRes += res * res
		dx := x[i] - xbar
		sxx += dx * dx
	}

	df := float64(n - 2)
	s2 := ssRes / df
	seSlope := math.Sqrt(s2 / sxx)
	seIntercept := math.Sqrt(s2 * (1/float64(n) + xbar*xbar/sxx))

	r := &RegressionResult{
		N:               n,
		Intercept:       intercept,
		Slope:           slope,
		InterceptStdErr: seIntercept,
		SlopeStdErr:     seSlope,
		InterceptT:      intercept / seIntercept,
		SlopeT:          slope / seSlope,
		InterceptP:      math.NaN(),
		SlopeP:          math.NaN(),
		RSquared:        r2,
	}
	if df > 0 {
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		r.InterceptP = twoSidedP(dist, r.InterceptT)
		r.SlopeP = twoSidedP(dist, r.SlopeT)
	}
	return r, nil
}

func twoSidedP(dist distuv.StudentsT, t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}
	return 2 * dist.CDF(-math.Abs(t))
}

// Predict evaluates the fitted line at x.
func (r *RegressionResult) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// Summary renders the fit in the familiar regression-printout shape.
func (r *RegressionResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OLS regression (n=%d, df=%d)\n", r.N, r.N-2)
	fmt.Fprintf(&b, "%-10s %12s %12s %10s %10s\n", "", "coef", "std err", "t", "P>|t|")
	fmt.Fprintf(&b, "%-10s %12.4f %12.4f %10.3f %10.3f\n",
		"const", r.Intercept, r.InterceptStdErr, r.InterceptT, r.InterceptP)
	fmt.Fprintf(&b, "%-10s %12.4f %12.4f %10.3f %10.3f\n",
		"x", r.Slope, r.SlopeStdErr, r.SlopeT, r.SlopeP)
	fmt.Fprintf(&b, "R-squared: %.4f\n", r.RSquared)
	return b.String()
}
