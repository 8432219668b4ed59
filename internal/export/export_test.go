package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSinkWritesOutputsAndManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	s, err := NewSink(dir, "boxplot")
	require.NoError(t, err)
	s.RecordInput("data/heatmap_alpha_delta/SIM-P-2_phi.csv")

	path, err := s.WritePNG("boxplot", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "boxplot.png"), path)
	require.NoError(t, s.Close())

	b, err := os.ReadFile(filepath.Join(dir, "manifest_boxplot.yaml"))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(b, &m))
	require.NotEmpty(t, m.RunID)
	require.Equal(t, "boxplot", m.Command)
	require.Equal(t, []string{"boxplot.png"}, m.Outputs)
	require.Equal(t, []string{"data/heatmap_alpha_delta/SIM-P-2_phi.csv"}, m.Inputs)
}
