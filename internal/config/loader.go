package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files, without extension.
	ConfigFileName = "trackfusion"

	// EnvPrefix is the prefix for environment variables, e.g. TRACKFUSION_STORE_PATH.
	EnvPrefix = "TRACKFUSION"
)

// Loader loads Config from files, environment variables, and flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader bound to the global viper instance, so that
// flags bound via viper.BindPFlag are visible to Load.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load reads the config file (if any exists on the search path), layers
// environment variables and previously bound flags on top, and validates
// the result.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadWithFile is Load, but reads a specific config file path instead of
// searching the default locations.
func (l *Loader) LoadWithFile(path string) (*Config, error) {
	if path == "" {
		return l.Load()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config: file does not exist: %s", path)
	}

	l.v.SetConfigFile(path)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read config file %s: %w", path, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// GetViper exposes the underlying viper instance for flag binding.
func (l *Loader) GetViper() *viper.Viper {
	return l.v
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
		l.v.AddConfigPath(filepath.Join(home, ".config", "trackfusion"))
	}
	l.v.AddConfigPath("/etc/trackfusion")
}

func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

func (l *Loader) setDefaults() {
	d := DefaultConfig()
	l.v.SetDefault("log_level", d.LogLevel)
	l.v.SetDefault("verbose", d.Verbose)
	l.v.SetDefault("fusion.min_track_length", d.Fusion.MinTrackLength)
	l.v.SetDefault("fusion.min_pair_occurrences", d.Fusion.MinPairOccurrences)
	l.v.SetDefault("store.path", d.Store.Path)
	l.v.SetDefault("cloud.bucket", d.Cloud.Bucket)
	l.v.SetDefault("cloud.prefix", d.Cloud.Prefix)
	l.v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	l.v.SetDefault("metrics.listen_addr", d.Metrics.ListenAddr)
}
