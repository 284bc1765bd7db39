package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file name looked up in the working directory.
const DefaultPath = "salesplot.yaml"

// Config represents the top-level salesplot.yaml configuration.
type Config struct {
	Chart  ChartConfig  `yaml:"chart"`
	Ingest IngestConfig `yaml:"ingest"`
}

// ChartConfig controls the rendered image artifact.
type ChartConfig struct {
	OutputPath string `yaml:"output_path"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
}

// IngestConfig controls the batch-level validation policy.
type IngestConfig struct {
	Lenient bool `yaml:"lenient"` // skip invalid rows instead of aborting
}

// Load reads a salesplot.yaml file from disk. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			OutputPath: "sales_chart.png",
			Width:      1024,
			Height:     768,
		},
		Ingest: IngestConfig{
			Lenient: false,
		},
	}
}
