package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
	"github.com/orangejuice2508/algorithmic-pricing/internal/stats"
)

var boxplotCoordinatedOnly bool

var boxplotCmd = &cobra.Command{
	Use:   "boxplot",
	Short: "Render the distribution of collusion degrees per treatment",
	Long: `Melts the alpha-delta phi surface of every treatment into one observation
per (alpha, delta) cell, attaches the coordination percentage from the
matching percentage surface, and renders one box per treatment. With
--coordinated-only, only runs with a coordination percentage above the
configured threshold enter the distribution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoxplot(boxplotCoordinatedOnly)
	},
}

func init() {
	boxplotCmd.Flags().BoolVar(&boxplotCoordinatedOnly, "coordinated-only", false, "restrict to coordinative runs")
	rootCmd.AddCommand(boxplotCmd)
}

func runBoxplot(coordinatedOnly bool) error {
	trs, err := selectedTreatments(nil)
	if err != nil {
		return err
	}

	sink, err := newSink("boxplot")
	if err != nil {
		return err
	}
	st := chartStyle()

	var boxes []render.NamedBox
	for i, tr := range trs {
		phiPath := dataPath("heatmap_alpha_delta", tr.String()+"_phi.csv")
		percPath := dataPath("heatmap_alpha_delta", tr.String()+"_percentage.csv")

		joined, err := analysis.SurfaceDistribution(phiPath, percPath, coordinatedOnly, cfg.CoordinationThreshold)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		sink.RecordInput(phiPath)
		sink.RecordInput(percPath)

		phi, err := joined.Floats(analysis.ColPhi)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		b, err := stats.Box(phi)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		boxes = append(boxes, render.NamedBox{Name: tr.String(), Stats: b, Color: st.Color(i)})
	}

	buf, err := render.BoxPlot(render.BoxConfig{
		XLabel: "Treatment",
		YLabel: "Collusion phi",
		Style:  st,
		Boxes:  boxes,
	})
	if err != nil {
		return err
	}

	name := "boxplot"
	if coordinatedOnly {
		name = "boxplot_coordinated"
	}
	if _, err := sink.WritePNG(name, buf); err != nil {
		return err
	}
	return sink.Close()
}
