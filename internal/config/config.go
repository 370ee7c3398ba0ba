package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Engine holds the configuration of the hexgrid runner.
type Engine struct {
	// Scenario file to load (grid, catalog, queries)
	Scenario string `yaml:"scenario"`

	// Query batch parallelism
	Workers int `yaml:"workers"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Prometheus /metrics listen address; empty disables the endpoint
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		Scenario:    "config/scenario.yaml",
		Workers:     4,
		LogLevel:    "info",
		MetricsAddr: "",
	}
}

// LoadEngine loads runner config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}
