package cmd

import (
	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
)

var marketSizeCmd = &cobra.Command{
	Use:   "market-size",
	Short: "Chart collusion against the number of firms",
	Long: `Reads data/market_size/<timing>-<competition>.csv and renders, per
timing/competition pair, the degree of tacit collusion over the market size
with an OLS trendline. The files span market sizes, so treatment identifiers
are used without their size suffix (SIM-P, SEQ-Q, ...).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		trs, err := selectedTreatments(nil)
		if err != nil {
			return err
		}
		return runCurveAnalysis("market-size", "market_size", analysis.ColMarketSize,
			"Number of firms", dropMarketSizes(trs))
	},
}

func init() {
	rootCmd.AddCommand(marketSizeCmd)
}

// dropMarketSizes strips the size component and deduplicates, preserving
// order: SIM-P-2 and SIM-P-3 both analyze file SIM-P.csv.
func dropMarketSizes(trs []analysis.Treatment) []analysis.Treatment {
	seen := make(map[string]bool, len(trs))
	var out []analysis.Treatment
	for _, tr := range trs {
		tr.MarketSize = 0
		if seen[tr.String()] {
			continue
		}
		seen[tr.String()] = true
		out = append(out, tr)
	}
	return out
}
