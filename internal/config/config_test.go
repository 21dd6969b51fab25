package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
	if cfg.Fusion.MinTrackLength != 2 {
		t.Errorf("Fusion.MinTrackLength = %d, want 2", cfg.Fusion.MinTrackLength)
	}
	if cfg.Store.Path != "trackfusion.db" {
		t.Errorf("Store.Path = %s, want trackfusion.db", cfg.Store.Path)
	}
	if cfg.Metrics.ListenAddr != ":9090" {
		t.Errorf("Metrics.ListenAddr = %s, want :9090", cfg.Metrics.ListenAddr)
	}
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for invalid log level")
	}
}

func TestValidate_RejectsNonPositiveMinTrackLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fusion.MinTrackLength = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for min_track_length < 1")
	}
}

func TestValidate_RejectsEmptyStorePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty store path")
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
