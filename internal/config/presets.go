package config

import "github.com/jakujobi/Math374Project1/internal/sweep"

var Presets = map[string]*Config{
	"default": {
		HMinExp: 1, HMaxExp: 16, Points: 50, Eps: sweep.DefaultEps,
	},
	"coarse": {
		HMinExp: 1, HMaxExp: 16, Points: 16, Eps: sweep.DefaultEps,
	},
	"fine": {
		HMinExp: 1, HMaxExp: 16, Points: 100, Eps: sweep.DefaultEps,
	},
	// Large h only: truncation dominates, the actual error tracks h/2
	// and h^2/6.
	"truncation": {
		HMinExp: 1, HMaxExp: 5, Points: 40, Eps: sweep.DefaultEps,
	},
	// Tiny h only: cancellation dominates, the actual error tracks the
	// eps/h bounds.
	"rounding": {
		HMinExp: 10, HMaxExp: 16, Points: 40, Eps: sweep.DefaultEps,
	},
	"degraded": {
		HMinExp: 1, HMaxExp: 16, Points: 50, Eps: 1e-12,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
