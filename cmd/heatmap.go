package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/export"
	"github.com/orangejuice2508/algorithmic-pricing/internal/grid"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

var (
	heatmapSmooth      bool
	heatmapContourStep float64
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Render alpha-delta collusion heatmaps with coordination contours",
	Long: `Reads data/heatmap_alpha_delta/<treatment>_phi.csv (wide: one row per
learning rate alpha, one column per discount factor delta) and renders the
collusion surface as a heatmap, overlaying iso-lines of the coordination
percentage from <treatment>_percentage.csv. By default both surfaces are
smoothed over the Moore neighborhood of each cell.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		step := heatmapContourStep
		if !cmd.Flags().Changed("contour-step") && !heatmapSmooth {
			// Wider spacing keeps unsmoothed, noisier contours readable.
			step = 25
		}
		return runHeatmap(heatmapSmooth, step)
	},
}

func init() {
	heatmapCmd.Flags().BoolVar(&heatmapSmooth, "smooth", true, "apply Moore-neighborhood smoothing to both surfaces")
	heatmapCmd.Flags().Float64Var(&heatmapContourStep, "contour-step", 20, "spacing of coordination contour levels in percentage points")
	rootCmd.AddCommand(heatmapCmd)
}

// deltaTicks are the discount-factor levels labeled on the y axis.
var deltaTicks = []float64{0.80, 0.85, 0.90, 0.95, 0.99}

func runHeatmap(smooth bool, contourStep float64) error {
	trs, err := selectedTreatments(nil)
	if err != nil {
		return err
	}
	if contourStep <= 0 {
		return fmt.Errorf("contour step must be positive, got %g", contourStep)
	}

	sink, err := newSink("heatmap")
	if err != nil {
		return err
	}
	st := chartStyle()

	for _, tr := range trs {
		phi, err := loadSurfaceGrid(sink, tr.String()+"_phi.csv", smooth)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		perc, err := loadSurfaceGrid(sink, tr.String()+"_percentage.csv", smooth)
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}

		var contours []grid.Segment
		for _, level := range contourLevels(contourStep) {
			contours = append(contours, perc.Contours(level)...)
		}

		buf, err := render.Heatmap(render.HeatmapConfig{
			Title:        tr.String(),
			XLabel:       "Learning factor alpha",
			YLabel:       "Discount factor delta",
			Style:        st,
			Grid:         phi,
			Scale:        render.HeatScale(),
			ZMin:         0,
			ZMax:         2,
			YTicks:       deltaTicks,
			Contours:     contours,
			ContourColor: drawing.ColorBlack,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", tr, err)
		}
		if _, err := sink.WritePNG(fmt.Sprintf("heatmap_%s", tr), buf); err != nil {
			return err
		}
	}
	return sink.Close()
}

// contourLevels returns the coordination levels drawn as iso-lines, spanning
// the full 0 to 100 percentage range inclusive. The boundary levels rarely
// intersect real surfaces and then contribute no segments.
func contourLevels(step float64) []float64 {
	var levels []float64
	for level := 0.0; level <= 100; level += step {
		levels = append(levels, level)
	}
	return levels
}

func loadSurfaceGrid(sink *export.Sink, file string, smooth bool) (*grid.Grid, error) {
	path := dataPath("heatmap_alpha_delta", file)
	wide, err := dataset.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	sink.RecordInput(path)

	g, err := grid.FromWide(wide, "alpha")
	if err != nil {
		return nil, err
	}
	if smooth {
		g = g.MooreSmooth()
	}
	return g, nil
}
