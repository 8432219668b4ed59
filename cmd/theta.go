package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
)

var thetaCmd = &cobra.Command{
	Use:   "theta",
	Short: "Chart collusion against the degree of substitutability theta",
	Long: `Reads data/analyze_theta/<treatment>.csv and renders, per treatment, the
degree of tacit collusion over theta with an OLS trendline and the bounds of
the collusion measure. Regression summaries and (conditional) means are
printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trs, err := selectedTreatments(nil)
		if err != nil {
			return err
		}
		return runCurveAnalysis("theta", "analyze_theta", analysis.ColTheta,
			"Degree of substitutability theta", trs)
	},
}

func init() {
	rootCmd.AddCommand(thetaCmd)
}
