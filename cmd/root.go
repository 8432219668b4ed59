package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/orangejuice2508/algorithmic-pricing/internal/analysis"
	cfgpkg "github.com/orangejuice2508/algorithmic-pricing/internal/config"
	"github.com/orangejuice2508/algorithmic-pricing/internal/export"
	"github.com/orangejuice2508/algorithmic-pricing/internal/render"
)

var (
	// Global flags (wired to config in loadConfig)
	cfgFile        string
	flagDataDir    string
	flagOutputDir  string
	flagTreatments []string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "algorithmic-pricing",
	Short: "Analyze and chart Q-learning pricing-simulation results",
	Long: `algorithmic-pricing loads the CSV output of the pricing-simulation
experiments (one treatment per file, e.g. SIM-P-3) and renders the analysis
figures: parameter curves with OLS trends, alpha-delta collusion heatmaps with
coordination contours, treatment box plots and per-period time series.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.algorithmic-pricing/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "root directory of the exported CSVs (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "directory for rendered charts (overrides config)")
	rootCmd.PersistentFlags().StringSliceVar(&flagTreatments, "treatments", nil, "treatments to analyze, e.g. SIM-P-2,SEQ-Q-3 (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			DataDir:    "data",
			OutputDir:  "out",
			Treatments: cfgpkg.DefaultTreatments(),
		}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("data-dir") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if f.Changed("output-dir") && flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if f.Changed("treatments") && len(flagTreatments) > 0 {
		cfg.Treatments = flagTreatments
	}
}

// selectedTreatments parses the configured treatment list, keeping only those
// for which keep returns true (nil keeps all).
func selectedTreatments(keep func(analysis.Treatment) bool) ([]analysis.Treatment, error) {
	all, err := analysis.ParseTreatments(cfg.Treatments)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return all, nil
	}
	var out []analysis.Treatment
	for _, tr := range all {
		if keep(tr) {
			out = append(out, tr)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no treatment in %v fits this analysis", cfg.Treatments)
	}
	return out, nil
}

func chartStyle() render.Style {
	st := render.DefaultStyle()
	if cfg.ChartWidth > 0 {
		st.Width = cfg.ChartWidth
	}
	if cfg.ChartHeight > 0 {
		st.Height = cfg.ChartHeight
	}
	return st
}

func newSink(command string) (*export.Sink, error) {
	return export.NewSink(cfg.OutputDir, command)
}

func dataPath(subdir, file string) string {
	return filepath.Join(cfg.DataDir, subdir, file)
}
