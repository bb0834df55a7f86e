package relver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the per-repository settings of the resolver CLI.
type Config struct {
	// Marker is the literal version tag prefix.
	Marker string `yaml:"marker"`
	// Trunk is the trunk branch name.
	Trunk string `yaml:"trunk"`
	// Repository is the "owner/repo" the tag set belongs to.
	Repository string `yaml:"repository"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Marker: "v",
		Trunk:  "main",
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing or
// unreadable file is the caller's decision to tolerate.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Marker == "" {
		cfg.Marker = "v"
	}
	if cfg.Trunk == "" {
		cfg.Trunk = "main"
	}

	return cfg, nil
}
