package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jakujobi/Math374Project1/internal/diff"
	"github.com/jakujobi/Math374Project1/internal/sweep"
)

type Config struct {
	HMinExp int     `yaml:"h_min_exp"`
	HMaxExp int     `yaml:"h_max_exp"`
	Points  int     `yaml:"points"`
	Eps     float64 `yaml:"eps"`
}

func DefaultConfig() *Config {
	return &Config{
		HMinExp: sweep.DefaultMinExp,
		HMaxExp: sweep.DefaultMaxExp,
		Points:  sweep.DefaultPoints,
		Eps:     sweep.DefaultEps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.HMinExp < sweep.MinExp || c.HMaxExp > sweep.MaxExp {
		return fmt.Errorf("exponent range [%d, %d] outside [%d, %d]", c.HMinExp, c.HMaxExp, sweep.MinExp, sweep.MaxExp)
	}
	if c.HMinExp > c.HMaxExp {
		return fmt.Errorf("h_min_exp %d exceeds h_max_exp %d", c.HMinExp, c.HMaxExp)
	}
	if c.Points < 1 {
		return fmt.Errorf("points must be at least 1, got %d", c.Points)
	}
	if c.Eps <= 0 {
		return fmt.Errorf("eps must be positive, got %g", c.Eps)
	}
	return nil
}

// StepSizes builds the log-spaced sweep this config describes.
func (c *Config) StepSizes() (diff.StepSizes, error) {
	return sweep.Logspace(c.HMinExp, c.HMaxExp, c.Points)
}
