package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.SampleSize != DefaultSampleSize {
		t.Errorf("SampleSize = %d, want %d", cfg.SampleSize, DefaultSampleSize)
	}
	if cfg.ReadmeMinBytes != DefaultReadmeMinBytes {
		t.Errorf("ReadmeMinBytes = %d, want %d", cfg.ReadmeMinBytes, DefaultReadmeMinBytes)
	}
	if cfg.Instructions.APIKeyEnv != "ANTHROPIC_API_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.Instructions.APIKeyEnv)
	}
	if cfg.Thresholds != DefaultThresholds() {
		t.Errorf("Thresholds = %+v, want defaults", cfg.Thresholds)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "sample_size: 50\nthresholds:\n  complexity_high: 25\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.SampleSize != 50 {
		t.Errorf("SampleSize = %d, want 50", cfg.SampleSize)
	}
	if cfg.Thresholds.ComplexityHigh != 25 {
		t.Errorf("ComplexityHigh = %v, want 25", cfg.Thresholds.ComplexityHigh)
	}
	// Untouched keys keep their defaults.
	if cfg.Thresholds.ComplexityLow != DefaultThresholds().ComplexityLow {
		t.Errorf("ComplexityLow = %v, want default", cfg.Thresholds.ComplexityLow)
	}
}
