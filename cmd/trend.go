package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Chart the firms' prices or quantities over the final periods",
	Long: `Reads data/trend/<treatment>.csv and renders each firm's decision variable
(price in P treatments, quantity in Q treatments) over the configured period
window at the end of the run, one chart per treatment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrend()
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend() error {
	trs, err := selectedTreatments(nil)
	if err != nil {
		return err
	}

	sink, err := newSink("trend")
	if err != nil {
		return err
	}
	st := chartStyle()

	for _, tr := range trs {
		path := dataPath("trend", tr.String()+".csv")
		tbl, err := dataset.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		sink.RecordInput(path)

		window := tbl.Slice(cfg.PeriodsStart, cfg.PeriodsEnd)
		series, err := firmSeries(window, tr, st)
		if err != nil {
			return err
		}

		buf, err := render.Line(render.LineConfig{
			Title:  tr.String(),
			XLabel: "Period",
			YLabel: tr.Competition.Variable(),
			Style:  st,
			Series: series,
			Legend: true,
		})
		if err != nil {
			return err
		}
		if _, err := sink.WritePNG(fmt.Sprintf("trend_%s", tr), buf); err != nil {
			return err
		}
	}
	return sink.Close()
}

// firmSeries builds one line per firm present in the table.
func firmSeries(tbl *dataset.Table, tr analysis.Treatment, st render.Style) ([]render.Series, error) {
	periods, err := tbl.Floats(analysis.ColPeriod)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tr, err)
	}
	cols := analysis.FirmColumns(tbl, tr.Competition)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: no %q columns in file", tr, tr.Competition.Variable())
	}

	series := make([]render.Series, 0, len(cols))
	for i, col := range cols {
		y, err := tbl.Floats(col)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tr, err)
		}
		series = append(series, render.Series{
			Name:  fmt.Sprintf("Firm %d", i+1),
			X:     periods,
			Y:     y,
			Color: st.Color(i),
		})
	}
	return series, nil
}
