package cmd

import (
	"fmt"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

// runCurveAnalysis is the shared body of the theta and market-size commands:
// per treatment, one chart of the collusion degree over the varied parameter
// with an OLS trendline and the 0/1 collusion bounds, plus the regression
// printout and (conditional) means on stdout.
func runCurveAnalysis(command, subdir, xColumn, xLabel string, trs []analysis.Treatment) error {
	sink, err := newSink(command)
	if err != nil {
		return err
	}
	st := chartStyle()

	for i, tr := range trs {
		path := dataPath(subdir, tr.String()+".csv")
		tbl, err := dataset.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		sink.RecordInput(path)

		x, err := tbl.Floats(xColumn)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		y, err := tbl.Floats(analysis.ColDegree)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		if len(x) < 2 {
			return fmt.Errorf("%s: need at least two rows in %s", tr, path)
		}

		fit, err := analysis.TrendFit(tbl, xColumn, analysis.ColDegree)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}

		color := st.Color(i)
		xEnds := []float64{x[0], x[len(x)-1]}
		series := []render.Series{
			{Name: tr.String(), X: x, Y: y, Color: color, Width: 3},
			{
				Name:  "OLS trend",
				X:     xEnds,
				Y:     []float64{fit.Predict(xEnds[0]), fit.Predict(xEnds[1])},
				Color: color,
				Width: 1.5,
			},
			render.ReferenceLine("competitive", x, 0),
			render.ReferenceLine("fully collusive", x, 1),
		}

		buf, err := render.Line(render.LineConfig{
			Title:  tr.String(),
			XLabel: xLabel,
			YLabel: "Collusion phi",
			Style:  st,
			Series: series,
		})
		if err != nil {
			return err
		}
		if _, err := sink.WritePNG(fmt.Sprintf("%s_%s", command, tr), buf); err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n", tr, fit.Summary())

		summary, err := analysis.Summarize(tbl, tr, analysis.ColDegree, analysis.ColCoordination, cfg.CoordinationThreshold)
		if err != nil {
			return err
		}
		fmt.Println(summary)
	}
	return sink.Close()
}
