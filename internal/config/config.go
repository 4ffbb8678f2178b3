// Package config loads optional defaults for unlambda's CLI and REPL from a
// YAML file, in the shape funxy's ext.Config loads funxy.yaml: unmarshal,
// validate, fill in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"unlambda/internal/driver"
)

// Config is the top-level unlambda.yaml configuration: default parse
// options and the default input mode when the CLI is invoked with neither
// a program argument nor -e.
type Config struct {
	// Strict turns trailing garbage after a complete expression into a
	// hard error instead of a warning. Defaults to false.
	Strict bool `yaml:"strict,omitempty"`

	// LogWarnings controls whether a non-strict trailing-garbage warning
	// is printed to stderr. Defaults to true.
	LogWarnings *bool `yaml:"log_warnings,omitempty"`

	// DefaultInput selects where program source comes from when the CLI
	// has no -e flag and no file argument: "stdin" (the default) or a
	// file path.
	DefaultInput string `yaml:"default_input,omitempty"`
}

// ParseOptions converts the loaded defaults to driver.ParseOptions.
func (c *Config) ParseOptions() driver.ParseOptions {
	logWarnings := true
	if c.LogWarnings != nil {
		logWarnings = *c.LogWarnings
	}
	return driver.ParseOptions{Strict: c.Strict, LogWarnings: logWarnings}
}

// Load reads and parses a config file. A missing file is not an error: it
// returns the zero-value Config's defaults, since the file is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.DefaultInput != "" && cfg.DefaultInput != "stdin" {
		if _, err := os.Stat(cfg.DefaultInput); err != nil {
			return nil, fmt.Errorf("%s: default_input %q: %w", path, cfg.DefaultInput, err)
		}
	}
	return &cfg, nil
}
