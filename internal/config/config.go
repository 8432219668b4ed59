package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DataDir is the root of the exported CSVs; each analysis reads from a
	// subdirectory named after it (data/analyze_gamma, data/trend, ...).
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// OutputDir receives rendered charts and run manifests.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Treatments analyzed when no --treatments flag is given, ordered by
	// degree of tacit collusion.
	Treatments []string `mapstructure:"treatments" yaml:"treatments"`

	// Chart dimensions in pixels.
	ChartWidth  int `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight int `mapstructure:"chart_height" yaml:"chart_height"`

	// CoordinationThreshold is the coordination percentage above which a run
	// counts as coordinative.
	CoordinationThreshold float64 `mapstructure:"coordination_threshold" yaml:"coordination_threshold"`

	// PeriodsStart/PeriodsEnd bound the window the trend analysis plots.
	PeriodsStart int `mapstructure:"periods_start" yaml:"periods_start"`
	PeriodsEnd   int `mapstructure:"periods_end" yaml:"periods_end"`
}

// DefaultTreatments is every simulated condition, ordered the way the result
// figures list them.
func DefaultTreatments() []string {
	return []string{
		"SIM-P-2", "SIM-P-3", "SIM-Q-2", "SIM-Q-3",
		"SEQ-P-2", "SEQ-P-3", "SEQ-Q-2", "SEQ-Q-3",
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ALGOPRICING")
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data")
	v.SetDefault("output_dir", "out")
	v.SetDefault("treatments", DefaultTreatments())
	v.SetDefault("chart_width", 1920)
	v.SetDefault("chart_height", 1080)
	v.SetDefault("coordination_threshold", 0.0)
	v.SetDefault("periods_start", 9900)
	v.SetDefault("periods_end", 10000)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".algorithmic-pricing")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.algorithmic-pricing/config.yaml, creating the
// directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".algorithmic-pricing")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
