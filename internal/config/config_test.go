package config

import (
	"path/filepath"
	"testing"

	"github.com/jakujobi/Math374Project1/internal/sweep"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HMinExp != 1 || cfg.HMaxExp != 16 {
		t.Errorf("expected exponent range [1, 16], got [%d, %d]", cfg.HMinExp, cfg.HMaxExp)
	}
	if cfg.Points != 50 {
		t.Errorf("expected 50 points, got %d", cfg.Points)
	}
	if cfg.Eps != sweep.DefaultEps {
		t.Errorf("expected default eps %g, got %g", sweep.DefaultEps, cfg.Eps)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"min below range", func(c *Config) { c.HMinExp = 0 }, true},
		{"max above range", func(c *Config) { c.HMaxExp = 17 }, true},
		{"inverted range", func(c *Config) { c.HMinExp = 10; c.HMaxExp = 5 }, true},
		{"zero points", func(c *Config) { c.Points = 0 }, true},
		{"zero eps", func(c *Config) { c.Eps = 0 }, true},
		{"negative eps", func(c *Config) { c.Eps = -1e-16 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fdiff.yaml")

	orig := &Config{HMinExp: 2, HMaxExp: 12, Points: 30, Eps: 1e-14}
	if err := Save(path, orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *orig {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, orig)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rounding")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.HMinExp != 10 {
		t.Errorf("expected h_min_exp 10, got %d", cfg.HMinExp)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestStepSizes(t *testing.T) {
	cfg := &Config{HMinExp: 1, HMaxExp: 8, Points: 15, Eps: sweep.DefaultEps}
	hs, err := cfg.StepSizes()
	if err != nil {
		t.Fatalf("step sizes failed: %v", err)
	}
	if len(hs) != 15 {
		t.Errorf("expected 15 step sizes, got %d", len(hs))
	}
}
