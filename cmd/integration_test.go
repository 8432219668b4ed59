package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// runCmd executes the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	// Reset sticky flags that may persist Changed state across invocations.
	// The treatments slice needs its value cleared too: slice flags append
	// on every parse, so a stale value would leak into the next run.
	if f := rootCmd.PersistentFlags(); f != nil {
		for _, name := range []string{"config", "data-dir", "output-dir", "treatments"} {
			if fl := f.Lookup(name); fl != nil {
				fl.Changed = false
			}
		}
		if fl := f.Lookup("treatments"); fl != nil {
			if sv, ok := fl.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			}
		}
	}
	flagTreatments = nil
	if fl := boxplotCmd.Flags().Lookup("coordinated-only"); fl != nil {
		_ = fl.Value.Set("false")
		fl.Changed = false
	}
	if fl := heatmapCmd.Flags().Lookup("contour-step"); fl != nil {
		_ = fl.Value.Set("20")
		fl.Changed = false
	}
	boxplotCoordinatedOnly = false
	cfgFile = ""
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func writeFixture(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("missing output %s: %v", path, err)
	}
}

const surfaceCSV = "alpha,0.80,0.90\n" +
	"0.05,0.3,0.5\n" +
	"0.10,0.4,0.6\n"

func TestGammaWritesAllMeasures(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	writeFixture(t, filepath.Join(dataDir, "analyze_gamma", "SIM-P-3.csv"),
		"Gamma,Phi,Percentage,Phi_bedingt\n"+
			"0.1,0.20,30,0.40\n"+
			"0.2,0.30,40,0.50\n"+
			"0.3,0.40,50,0.60\n")

	runCmd(t, "gamma", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-3")

	mustExist(t, filepath.Join(outDir, "gamma_phi.png"))
	mustExist(t, filepath.Join(outDir, "gamma_percentage.png"))
	mustExist(t, filepath.Join(outDir, "gamma_phi_conditional.png"))
	mustExist(t, filepath.Join(outDir, "manifest_gamma.yaml"))
}

func TestThetaCurveWithTrend(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	writeFixture(t, filepath.Join(dataDir, "analyze_theta", "SIM-P-2.csv"),
		"THETA,DEGREE OF TACIT COLLUSION,PERCENTAGE OF COORDINATION\n"+
			"0.25,0.80,60\n"+
			"0.50,0.60,50\n"+
			"0.75,0.45,40\n"+
			"1.00,0.30,20\n")

	runCmd(t, "theta", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")

	mustExist(t, filepath.Join(outDir, "theta_SIM-P-2.png"))
	mustExist(t, filepath.Join(outDir, "manifest_theta.yaml"))
}

func TestHeatmapAndBoxplotShareSurfaces(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	writeFixture(t, filepath.Join(dataDir, "heatmap_alpha_delta", "SIM-P-2_phi.csv"), surfaceCSV)
	writeFixture(t, filepath.Join(dataDir, "heatmap_alpha_delta", "SIM-P-2_percentage.csv"),
		"alpha,0.80,0.90\n"+
			"0.05,10,60\n"+
			"0.10,30,90\n")

	runCmd(t, "heatmap", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")
	mustExist(t, filepath.Join(outDir, "heatmap_SIM-P-2.png"))

	runCmd(t, "boxplot", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")
	mustExist(t, filepath.Join(outDir, "boxplot.png"))

	runCmd(t, "boxplot", "--coordinated-only", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")
	mustExist(t, filepath.Join(outDir, "boxplot_coordinated.png"))
}

func TestTrendAndDeviationsUsePeriodWindow(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	cfgPath := filepath.Join(home, "config.yaml")
	writeFixture(t, cfgPath, "periods_start: 0\nperiods_end: 6\n")

	prices := "Period,Price of firm 1,Price of firm 2\n" +
		"1,1.0,1.1\n" +
		"2,1.2,1.3\n" +
		"3,1.4,1.2\n" +
		"4,1.3,1.4\n" +
		"5,1.5,1.5\n" +
		"6,1.4,1.6\n"
	writeFixture(t, filepath.Join(dataDir, "trend", "SIM-P-2.csv"), prices)
	writeFixture(t, filepath.Join(dataDir, "deviations", "SIM-P-2.csv"), prices)

	runCmd(t, "trend", "--config", cfgPath, "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")
	mustExist(t, filepath.Join(outDir, "trend_SIM-P-2.png"))

	runCmd(t, "deviations", "--config", cfgPath, "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")
	mustExist(t, filepath.Join(outDir, "deviations_SIM-P-2.png"))
}

func TestQInitComparesInitializations(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	writeFixture(t, filepath.Join(dataDir, "q_matrix_init", "SIM-Q-2_randomized_uniformly.csv"), surfaceCSV)
	writeFixture(t, filepath.Join(dataDir, "q_matrix_init", "SIM-Q-2_zeros.csv"),
		"alpha,0.80,0.90\n"+
			"0.05,0.1,0.2\n"+
			"0.10,0.2,0.3\n")

	runCmd(t, "qinit", "--treatment", "SIM-Q-2", "--data-dir", dataDir, "--output-dir", outDir)

	mustExist(t, filepath.Join(outDir, "qinit_SIM-Q-2.png"))
	mustExist(t, filepath.Join(outDir, "manifest_qinit.yaml"))
}

func TestTreatmentsFlagDoesNotLeakAcrossRuns(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	dataDir := filepath.Join(home, "data")
	outDir := filepath.Join(home, "out")
	writeFixture(t, filepath.Join(dataDir, "analyze_gamma", "SIM-P-3.csv"),
		"Gamma,Phi,Percentage,Phi_bedingt\n"+
			"0.1,0.20,30,0.40\n"+
			"0.2,0.30,40,0.50\n")
	// Only SIM-P-2 exists for theta; a leaked SIM-P-3 would fail the run.
	writeFixture(t, filepath.Join(dataDir, "analyze_theta", "SIM-P-2.csv"),
		"THETA,DEGREE OF TACIT COLLUSION,PERCENTAGE OF COORDINATION\n"+
			"0.25,0.80,60\n"+
			"0.50,0.60,50\n"+
			"0.75,0.45,40\n")

	runCmd(t, "gamma", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-3")
	runCmd(t, "theta", "--data-dir", dataDir, "--output-dir", outDir, "--treatments", "SIM-P-2")

	mustExist(t, filepath.Join(outDir, "theta_SIM-P-2.png"))
	if _, err := os.Stat(filepath.Join(outDir, "theta_SIM-P-3.png")); err == nil {
		t.Fatalf("theta analyzed a treatment from the previous run")
	}
}

func TestContourLevelsSpanFullRange(t *testing.T) {
	got := contourLevels(20)
	want := []float64{0, 20, 40, 60, 80, 100}
	if len(got) != len(want) {
		t.Fatalf("contourLevels(20) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("contourLevels(20) = %v, want %v", got, want)
		}
	}
}

func TestConfigSetPersists(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	cfgPath := filepath.Join(home, "config.yaml")
	writeFixture(t, cfgPath, "chart_width: 1920\n")

	runCmd(t, "config", "set", "chart_width", "800", "--config", cfgPath)

	body, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(body), "chart_width: 800") {
		t.Fatalf("expected saved chart_width in %s, got:\n%s", cfgPath, body)
	}
}
