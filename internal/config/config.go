// Package config loads the optional .prosegrade.yml run configuration:
// language, metric subset, sample seed, coefficient overrides, and
// ignore patterns.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/prosegrade/prosegrade/internal/catalog"
)

// Config is the top-level configuration.
type Config struct {
	// Language selects the coefficient table. Empty means English.
	Language string `yaml:"language"`

	// Metrics restricts scoring to a subset of metric names. Empty
	// means every metric registered for the language.
	Metrics MetricList `yaml:"metrics"`

	// Seed initializes the Forcast sample generator.
	Seed int64 `yaml:"seed"`

	// Parameters overlays coefficients on the built-in catalog, keyed
	// language -> metric -> {coefficient: value}.
	Parameters catalog.Catalog `yaml:"parameters"`

	// Ignore lists glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`
}

// MetricList is a YAML union: a sequence of names or a single
// comma-separated scalar.
//   - [smog, dale_chall]
//   - "smog, dale_chall"
type MetricList []string

// UnmarshalYAML implements the union decoding for MetricList.
func (m *MetricList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("invalid metrics value: %w", err)
		}
		*m = splitCommaList(raw)
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("invalid metrics list: %w", err)
		}
		*m = names
		return nil
	default:
		return fmt.Errorf("metrics must be a list or a comma-separated string, got %v", value.Kind)
	}
}

// Catalog returns the built-in coefficient catalog with this config's
// parameter overrides applied.
func (c *Config) Catalog() catalog.Catalog {
	base := catalog.Builtin()
	if len(c.Parameters) == 0 {
		return base
	}
	return base.Merge(c.Parameters)
}

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	return &Config{Language: "en"}
}
