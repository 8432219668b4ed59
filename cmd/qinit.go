package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	"github.com/orangejuice2508/algorithmic-pricing/internal/dataset"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
	"github.com/orangejuice2508/algorithmic-pricing/internal/stats"
)

var qinitTreatment string

var qinitCmd = &cobra.Command{
	Use:   "qinit",
	Short: "Compare collusion under different Q-matrix initializations",
	Long: `Reads data/q_matrix_init/<treatment>_randomized_uniformly.csv and
<treatment>_zeros.csv and renders a box plot comparing the distributions of the
degree of tacit collusion under the two initialization schemes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQInit(qinitTreatment)
	},
}

func init() {
	qinitCmd.Flags().StringVar(&qinitTreatment, "treatment", "SIM-Q-2", "treatment whose initialization runs to compare")
	rootCmd.AddCommand(qinitCmd)
}

func runQInit(treatment string) error {
	tr, err := analysis.ParseTreatment(treatment)
	if err != nil {
		return err
	}

	sink, err := newSink("qinit")
	if err != nil {
		return err
	}
	st := chartStyle()

	variants := []struct {
		suffix string
		label  string
	}{
		{"randomized_uniformly", "Randomized uniformly"},
		{"zeros", "Zeros"},
	}

	boxes := make([]render.NamedBox, 0, len(variants))
	for i, v := range variants {
		path := dataPath("q_matrix_init", fmt.Sprintf("%s_%s.csv", tr, v.suffix))
		wide, err := dataset.ReadCSV(path)
		if err != nil {
			return fmt.Errorf("%s: %w", v.label, err)
		}
		sink.RecordInput(path)

		long, err := analysis.MeltSurface(wide, analysis.ColPhi)
		if err != nil {
			return fmt.Errorf("%s: %w", v.label, err)
		}
		phi, err := long.Floats(analysis.ColPhi)
		if err != nil {
			return fmt.Errorf("%s: %w", v.label, err)
		}
		box, err := stats.Box(phi)
		if err != nil {
			return fmt.Errorf("%s: %w", v.label, err)
		}
		boxes = append(boxes, render.NamedBox{Name: v.label, Stats: box, Color: st.Color(i)})
	}

	buf, err := render.BoxPlot(render.BoxConfig{
		Title:  fmt.Sprintf("%s: Q-matrix initialization", tr),
		YLabel: "Degree of tacit collusion",
		Style:  st,
		Boxes:  boxes,
	})
	if err != nil {
		return err
	}
	if _, err := sink.WritePNG(fmt.Sprintf("qinit_%s", tr), buf); err != nil {
		return err
	}
	return sink.Close()
}
