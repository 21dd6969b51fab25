// Package config defines the trackfusion CLI's layered configuration:
// flags override environment variables (TRACKFUSION_*), which override a
// YAML file, which overrides these defaults.
package config

import "fmt"

// Config is the complete configuration for the trackfusion CLI.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose"   yaml:"verbose"   json:"verbose"`

	Fusion  FusionConfig  `mapstructure:"fusion"  yaml:"fusion"  json:"fusion"`
	Store   StoreConfig   `mapstructure:"store"   yaml:"store"   json:"store"`
	Cloud   CloudConfig   `mapstructure:"cloud"   yaml:"cloud"   json:"cloud"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

// FusionConfig controls the two filter passes applied after Build.
type FusionConfig struct {
	MinTrackLength     int `mapstructure:"min_track_length"     yaml:"min_track_length"     json:"min_track_length"`
	MinPairOccurrences int `mapstructure:"min_pair_occurrences" yaml:"min_pair_occurrences" json:"min_pair_occurrences"`
}

// StoreConfig points at the SQLite database used to persist exported runs.
type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// CloudConfig names the S3 destination for uploaded runs. Bucket empty
// means cloud export is disabled.
type CloudConfig struct {
	Bucket string `mapstructure:"bucket" yaml:"bucket" json:"bucket"`
	Prefix string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
}

// MetricsConfig holds the Prometheus namespace the build command records
// under and the address the serve-metrics command listens on.
type MetricsConfig struct {
	Namespace  string `mapstructure:"namespace"   yaml:"namespace"   json:"namespace"`
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" json:"listen_addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Fusion: FusionConfig{
			MinTrackLength:     2,
			MinPairOccurrences: 0,
		},
		Store: StoreConfig{
			Path: "trackfusion.db",
		},
		Metrics: MetricsConfig{
			Namespace:  "trackfusion",
			ListenAddr: ":9090",
		},
	}
}

// Validate rejects configurations that cannot be acted on.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.Fusion.MinTrackLength < 1 {
		return fmt.Errorf("invalid fusion.min_track_length: %d (must be >= 1)", c.Fusion.MinTrackLength)
	}
	if c.Fusion.MinPairOccurrences < 0 {
		return fmt.Errorf("invalid fusion.min_pair_occurrences: %d (must be >= 0)", c.Fusion.MinPairOccurrences)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
