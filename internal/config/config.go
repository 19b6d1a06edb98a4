// Package config defines the yaml scenario description consumed by the
// celldrift CLI, plus a handful of named presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultCount    = 100
	DefaultMass     = 1.0
	DefaultRadius   = 0.1
)

type Config struct {
	World     WorldConfig     `yaml:"world"`
	Particles ParticlesConfig `yaml:"particles"`
	Gravity   [3]float64      `yaml:"gravity"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Seed      int64           `yaml:"seed"`
	// SampleEvery thins trajectory recording; 1 records every step.
	SampleEvery int `yaml:"sample_every"`
}

type WorldConfig struct {
	// Kind selects the world: "flat", "terrain" or "open".
	Kind     string  `yaml:"kind"`
	Nx       int     `yaml:"nx"`
	Ny       int     `yaml:"ny"`
	Nz       int     `yaml:"nz"`
	CellSize float64 `yaml:"cell_size"`
	// Ground is the number of solid floor layers (flat worlds).
	Ground int `yaml:"ground"`
	// SeaLevel floods terrain below this cell layer (terrain worlds).
	SeaLevel int `yaml:"sea_level"`
}

type ParticlesConfig struct {
	Count  int     `yaml:"count"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	// Height is the z coordinate particles spawn at.
	Height float64 `yaml:"height"`
	// Scatter is the horizontal radius particles are scattered over.
	Scatter  float64    `yaml:"scatter"`
	Velocity [3]float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Kind:     "flat",
			Nx:       64,
			Ny:       64,
			Nz:       64,
			CellSize: 1.0,
			Ground:   4,
			SeaLevel: 16,
		},
		Particles: ParticlesConfig{
			Count:   DefaultCount,
			Mass:    DefaultMass,
			Radius:  DefaultRadius,
			Height:  48,
			Scatter: 16,
		},
		Gravity:     [3]float64{0, 0, -9.81},
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		SampleEvery: 1,
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
