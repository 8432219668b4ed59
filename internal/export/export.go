// Package export writes rendered charts to the output directory and records
// each run in a manifest, so a figure on disk can be traced back to the
// command and inputs that produced it.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest describes one analysis run.
type Manifest struct {
	RunID     string    `yaml:"run_id"`
	Command   string    `yaml:"command"`
	CreatedAt time.Time `yaml:"created_at"`
	Inputs    []string  `yaml:"inputs,omitempty"`
	Outputs   []string  `yaml:"outputs,omitempty"`
}

// Sink collects the outputs of a single run under one directory.
type Sink struct {
	dir      string
	manifest Manifest
}

// NewSink creates the output directory and starts a manifest for command.
func NewSink(outputDir, command string) (*Sink, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir output dir: %w", err)
	}
	return &Sink{
		dir: outputDir,
		manifest: Manifest{
			RunID:     uuid.NewString(),
			Command:   command,
			CreatedAt: time.Now().UTC(),
		},
	}, nil
}

// RecordInput notes a consumed file in the manifest.
func (s *Sink) RecordInput(path string) {
	s.manifest.Inputs = append(s.manifest.Inputs, path)
}

// WritePNG writes a rendered chart under name (".png" appended when missing)
// and records it. It returns the written path.
func (s *Sink) WritePNG(name string, data []byte) (string, error) {
	if filepath.Ext(name) == "" {
		name += ".png"
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	s.manifest.Outputs = append(s.manifest.Outputs, name)
	return path, nil
}

// Close writes the run manifest next to the outputs.
func (s *Sink) Close() error {
	b, err := yaml.Marshal(s.manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	name := fmt.Sprintf("manifest_%s.yaml", s.manifest.Command)
	if err := os.WriteFile(filepath.Join(s.dir, name), b, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
