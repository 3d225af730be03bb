package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/sim"
)

const (
	DefaultModel = "ar"
	DefaultN     = 200
	DefaultSeed  = 1
)

type Config struct {
	Model  string     `yaml:"model"`
	N      int        `yaml:"n"`
	Seed   int64      `yaml:"seed"`
	Params sim.Params `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  DefaultModel,
		N:      DefaultN,
		Seed:   DefaultSeed,
		Params: sim.DefaultParams(),
	}
}

// DefaultConfigFor returns the default config with model set and N set to
// the length the model is usually shown with.
func DefaultConfigFor(model string) *Config {
	cfg := DefaultConfig()
	cfg.Model = model
	cfg.N = experiment.NewRegistry().DefaultLength(model)
	return cfg
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

func (c *Config) Clone() *Config {
	cp := *c
	cp.Params = c.Params.Clone()
	return &cp
}

func (c *Config) ExperimentConfig() experiment.Config {
	return experiment.Config{
		Model:  c.Model,
		N:      c.N,
		Seed:   c.Seed,
		Params: c.Params.Clone(),
	}
}
