// Package config loads pipeline settings from YAML with embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config tunes the validation/repair pipeline and its consumers.
type Config struct {
	// AttemptBudget bounds repair validation cycles per document.
	AttemptBudget int `yaml:"attempt_budget"`
	// ExcerptLimit bounds the raw-text excerpt in fallback reports.
	ExcerptLimit int `yaml:"excerpt_limit"`
	// Redact scrubs secret-shaped text from fallback excerpts.
	Redact bool `yaml:"redact"`
	// ZuulPathPrefixes are extra workspace prefixes stripped from issue
	// locations, tried ahead of the built-in ones.
	ZuulPathPrefixes []string `yaml:"zuul_path_prefixes"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("config.Default: parse embedded defaults: %w", err)
	}
	return &c, nil
}

// Load reads a YAML config file layered over the embedded defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config.Load: parse %q: %w", path, err)
	}
	return c, nil
}
