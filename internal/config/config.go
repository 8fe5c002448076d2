// Package config loads the service configuration: defaults, an optional YAML
// file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/p-shah256/tailor/internal/cleaner"
)

type Config struct {
	Port               int      `yaml:"port"`
	Model              string   `yaml:"model"`
	DefaultTemperature float32  `yaml:"default_temperature"`
	CompanyOverrides   []string `yaml:"company_overrides"`
	CutoffMarkers      []string `yaml:"cutoff_markers"`
}

func Default() *Config {
	return &Config{
		Port:               8080,
		Model:              "gemini-2.0-flash",
		DefaultTemperature: 0.7,
		// Employers whose postings never say "at <Company>" but mention the
		// name in the body. Extend per posting style, don't hardcode deeper.
		CompanyOverrides: []string{"Moneris"},
		CutoffMarkers:    cleaner.DefaultCutoffMarkers,
	}
}

// Load builds the config from defaults, the YAML file at path (skipped when
// path is empty), and finally PORT / GEMINI_MODEL from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portEnv, err)
		}
		cfg.Port = port
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg, nil
}
