package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

var gammaCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Chart collusion against the weighting factor gamma",
	Long: `Reads data/analyze_gamma/<treatment>.csv and renders one multi-treatment
line chart per measure: degree of tacit collusion, percentage of coordination,
and the collusion degree conditioned on coordinative runs. Gamma only exists
in markets with more than two firms, so two-firm treatments are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGamma()
	},
}

func init() {
	rootCmd.AddCommand(gammaCmd)
}

func runGamma() error {
	trs, err := selectedTreatments(func(tr analysis.Treatment) bool {
		return tr.MarketSize > 2
	})
	if err != nil {
		return err
	}

	sink, err := newSink("gamma")
	if err != nil {
		return err
	}
	st := chartStyle()

	measures := []struct {
		column string
		label  string
		file   string
	}{
		{analysis.ColPhi, "Collusion phi", "gamma_phi"},
		{analysis.ColPercentage, "Coordination psi (%)", "gamma_percentage"},
		{analysis.ColPhiConditional, "Collusion phi (conditional)", "gamma_phi_conditional"},
	}

	tables := make(map[string]*dataset.Table, len(trs))
	for _, tr := range trs {
		path := dataPath("analyze_gamma", tr.String()+".csv")
		tbl, err := dataset.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		tables[tr.String()] = tbl
		sink.RecordInput(path)
	}

	for _, m := range measures {
		var series []render.Series
		for i, tr := range trs {
			tbl := tables[tr.String()]
			x, err := tbl.Floats(analysis.ColGamma)
			if err != nil {
				return fmt.Errorf("%s: %w", tr, err)
			}
			y, err := tbl.Floats(m.column)
			if err != nil {
				return fmt.Errorf("%s: %w", tr, err)
			}
			series = append(series, render.Series{
				Name:  tr.String(),
				X:     x,
				Y:     y,
				Color: st.Color(i),
			})
		}

		buf, err := render.Line(render.LineConfig{
			XLabel: "Weighting factor gamma",
			YLabel: m.label,
			Style:  st,
			Series: series,
			Legend: true,
		})
		if err != nil {
			return err
		}
		if _, err := sink.WritePNG(m.file, buf); err != nil {
			return err
		}
	}
	return sink.Close()
}
