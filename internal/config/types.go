// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// Environment keys consumed by the loader.
const (
	EnvLogLevel    = "CHAIN_LOG_LEVEL"
	EnvOutput      = "CHAIN_OUTPUT"
	EnvInput       = "CHAIN_INPUT"
	EnvMetricsFile = "CHAIN_METRICS_FILE"
)

// AppConfig is the resolved runtime configuration.
type AppConfig struct {
	Version  string
	LogLevel string
	// Output is the snapshot file written after the chain is built. Empty disables it.
	Output string
	// Input is a snapshot file that seeds the chain; values given as
	// arguments are appended to it.
	Input string
	// MetricsFile receives the collected metrics in Prometheus text format
	// after each run. Empty disables it.
	MetricsFile string
	Values      []string
}

// FileConfig mirrors the on-disk YAML layout.
type FileConfig struct {
	LogLevel    string   `yaml:"logLevel,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	Input       string   `yaml:"input,omitempty"`
	MetricsFile string   `yaml:"metricsFile,omitempty"`
	Values      []string `yaml:"values,omitempty"`
}
