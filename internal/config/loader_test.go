package config

import (
	"os"
	"strings"
	"testing"
)

func clearTrackfusionEnvVars() {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TRACKFUSION_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) > 0 {
				_ = os.Unsetenv(parts[0])
			}
		}
	}
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if loader.v == nil {
		t.Error("Loader viper instance is nil")
	}
}

func TestLoadWithNoConfigFile(t *testing.T) {
	clearTrackfusionEnvVars()

	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Errorf("Load() unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Store.Path != "trackfusion.db" {
		t.Errorf("Store.Path = %q, want default %q", cfg.Store.Path, "trackfusion.db")
	}
	if cfg.Fusion.MinTrackLength != 2 {
		t.Errorf("Fusion.MinTrackLength = %d, want default 2", cfg.Fusion.MinTrackLength)
	}
}

func TestLoadWithEnvVarOverride(t *testing.T) {
	clearTrackfusionEnvVars()
	defer clearTrackfusionEnvVars()

	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := os.Setenv("TRACKFUSION_STORE_PATH", "/tmp/custom.db"); err != nil {
		t.Fatalf("Setenv: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Store.Path != "/tmp/custom.db" {
		t.Errorf("Store.Path = %q, want env override %q", cfg.Store.Path, "/tmp/custom.db")
	}
}

func TestLoadWithFileMissing(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadWithFile("/does/not/exist.yaml")
	if err == nil {
		t.Fatal("LoadWithFile() expected error for missing file, got nil")
	}
}
