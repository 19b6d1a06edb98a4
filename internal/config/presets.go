package config

var Presets = map[string]*Config{
	// a single heavy sphere dropped onto a flat floor
	"drop": {
		World: WorldConfig{Kind: "flat", Nx: 32, Ny: 32, Nz: 64, CellSize: 1.0, Ground: 4},
		Particles: ParticlesConfig{
			Count: 1, Mass: 5, Radius: 0.25, Height: 56,
		},
		Gravity: [3]float64{0, 0, -9.81},
		Dt:      0.01, Duration: 15.0, SampleEvery: 1,
	},
	// many light droplets scattered over rolling terrain
	"rain": {
		World: WorldConfig{Kind: "terrain", Nx: 64, Ny: 64, Nz: 64, CellSize: 1.0, SeaLevel: 20},
		Particles: ParticlesConfig{
			Count: 500, Mass: 0.05, Radius: 0.02, Height: 60, Scatter: 28,
		},
		Gravity: [3]float64{0, 0, -9.81},
		Dt:      0.01, Duration: 20.0, SampleEvery: 5,
	},
	// dense grains settling through a flooded basin
	"settling": {
		World: WorldConfig{Kind: "terrain", Nx: 48, Ny: 48, Nz: 48, CellSize: 1.0, SeaLevel: 36},
		Particles: ParticlesConfig{
			Count: 200, Mass: 2, Radius: 0.05, Height: 34, Scatter: 18,
		},
		Gravity: [3]float64{0, 0, -9.81},
		Dt:      0.005, Duration: 30.0, SampleEvery: 10,
	},
	// no gravity, no bounds: particles coast on their initial velocity
	"vacuum": {
		World: WorldConfig{Kind: "open"},
		Particles: ParticlesConfig{
			Count: 50, Mass: 1, Radius: 0.1, Height: 0, Scatter: 10,
			Velocity: [3]float64{1, 0, 0},
		},
		Gravity: [3]float64{0, 0, 0},
		Dt:      0.01, Duration: 10.0, SampleEvery: 1,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
