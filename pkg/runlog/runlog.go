// Package runlog keeps a lightweight YAML index of batch runs, one entry
// per run, so the history of a corpus directory is visible without reading
// the manifest.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunInfo represents metadata about one batch run.
type RunInfo struct {
	StartedAt time.Time `yaml:"started_at"`
	Duration  string    `yaml:"duration"`
	Processed int       `yaml:"processed"`
	Done      int       `yaml:"done"`
	Failed    int       `yaml:"failed"`
	Manifest  string    `yaml:"manifest"`
	Output    string    `yaml:"output"`
}

// RunIndex represents the runs/index.yaml file.
type RunIndex struct {
	Runs []RunInfo `yaml:"runs"`
}

// IndexPath returns the path to the run index inside baseDir.
func IndexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// AppendRun adds a run entry to the index, creating the index if absent.
func AppendRun(baseDir string, info RunInfo) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create runs dir: %w", err)
	}

	indexPath := IndexPath(baseDir)
	var index RunIndex
	if data, err := os.ReadFile(indexPath); err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse run index: %w", err)
		}
	}

	index.Runs = append(index.Runs, info)

	output, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal run index: %w", err)
	}
	if err := os.WriteFile(indexPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write run index: %w", err)
	}
	return nil
}

// Load reads the run index. A missing index is an empty history, not an
// error.
func Load(baseDir string) (*RunIndex, error) {
	data, err := os.ReadFile(IndexPath(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &RunIndex{}, nil
		}
		return nil, fmt.Errorf("failed to read run index: %w", err)
	}

	var index RunIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse run index: %w", err)
	}
	return &index, nil
}
