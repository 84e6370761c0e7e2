// Package config loads the optional bankbee.yaml settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankbee.yaml configuration.
type Config struct {
	DefaultBank string       `yaml:"default_bank,omitempty"`
	RulesPath   string       `yaml:"rules_path,omitempty"`
	Report      ReportConfig `yaml:"report"`
}

// ReportConfig controls report command defaults. Flags override these.
type ReportConfig struct {
	View string `yaml:"view"` // category | recipient | day
	Type string `yaml:"type"` // expense | income
}

// Load reads a bankbee.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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
		Report: ReportConfig{
			View: "category",
			Type: "expense",
		},
	}
}
