package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the command-line flags so batch jobs can keep their
// settings in a YAML file. Flags given explicitly on the command line win
// over file values.
type fileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Pages  string `yaml:"pages"`

	Direction string `yaml:"direction"`
	Workers   int    `yaml:"workers"`
	DPI       int    `yaml:"dpi"`
	Format    string `yaml:"format"`
	Quality   int    `yaml:"quality"`

	BlankThreshold  int     `yaml:"blank_threshold"`
	GutterThreshold float64 `yaml:"gutter_threshold"`
	MinGutterWidth  int     `yaml:"min_gutter_width"`
	MinPanelSize    int     `yaml:"min_panel_size"`
	MaxDepth        int     `yaml:"max_depth"`
	BandOverlap     float64 `yaml:"band_overlap"`
}

// loadConfigFile reads a YAML config file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
