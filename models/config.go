package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for batch runs, loaded from a YAML
// file. CLI flags override individual fields.
type Config struct {
	RootDir      string   `yaml:"root_dir"`
	Ext          string   `yaml:"ext"`
	ManifestPath string   `yaml:"manifest"`
	OutputPath   string   `yaml:"output"`
	RunsDir      string   `yaml:"runs_dir"`
	Engine       string   `yaml:"engine"`
	Mode         string   `yaml:"mode"`
	BaseForm     bool     `yaml:"base_form"`
	HTMLExtract  bool     `yaml:"html_extract"`
	POSKeep      []string `yaml:"pos_keep"`
	POSExclude   []string `yaml:"pos_exclude"`
	Stopwords    []string `yaml:"stopwords"`
	SaveEvery    int      `yaml:"save_every"`
	PreviewChars int      `yaml:"preview_chars"`
	DetectLang   bool     `yaml:"detect_lang"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Ext:          ".txt",
		ManifestPath: "manifest.csv",
		OutputPath:   "tokens.jsonl",
		RunsDir:      "runs",
		Engine:       "ipa",
		Mode:         "normal",
		BaseForm:     true,
		SaveEvery:    1,
		PreviewChars: 120,
	}
}

// LoadConfig reads a YAML config file and applies defaults for zero fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.SaveEvery <= 0 {
		config.SaveEvery = 1
	}
	if config.PreviewChars <= 0 {
		config.PreviewChars = 120
	}
	return config, nil
}
