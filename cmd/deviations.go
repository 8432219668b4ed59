package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

// Row index of the pre-deviation equilibrium in the exported deviation files.
const nashRow = 3

var deviationsCmd = &cobra.Command{
	Use:   "deviations",
	Short: "Chart the firms' reactions to a forced price deviation",
	Long: `Reads data/deviations/<treatment>.csv and renders each firm's decision
variable around the forced deviation, together with a dashed reference line at
the pre-deviation Nash level, one chart per treatment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeviations()
	},
}

func init() {
	rootCmd.AddCommand(deviationsCmd)
}

func runDeviations() error {
	trs, err := selectedTreatments(nil)
	if err != nil {
		return err
	}

	sink, err := newSink("deviations")
	if err != nil {
		return err
	}
	st := chartStyle()

	for _, tr := range trs {
		path := dataPath("deviations", tr.String()+".csv")
		tbl, err := dataset.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		sink.RecordInput(path)

		series, err := firmSeries(tbl, tr, st)
		if err != nil {
			return err
		}
		// The deviation is forced in the period after the Nash row.
		if tbl.NumRows() <= nashRow+1 {
			return fmt.Errorf("%s: need at least %d rows to locate the forced deviation", tr, nashRow+2)
		}
		first, err := tbl.Floats(analysis.FirmColumn(tr.Competition, 1))
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		nash := first[nashRow]
		marker := render.VerticalMarker("Forced deviation", series[0].X[nashRow+1], series)
		variable := strings.ToLower(tr.Competition.Variable())
		series = append(series,
			render.ReferenceLine(fmt.Sprintf("Nash %s", variable), series[0].X, nash),
			marker)

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
		if _, err := sink.WritePNG(fmt.Sprintf("deviations_%s", tr), buf); err != nil {
			return err
		}
	}
	return sink.Close()
}
