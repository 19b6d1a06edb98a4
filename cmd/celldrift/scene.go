package main

import (
	"fmt"
	"math/rand"

	"github.com/kvat/celldrift/internal/config"
	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/terrain"
	"github.com/kvat/celldrift/internal/vec"
)

// buildScene turns a scenario config into a populated simulator. The
// returned grid is nil for open worlds.
func buildScene(cfg *config.Config, seed int64) (*phys.Simulator, *terrain.Grid, error) {
	var (
		world phys.World
		grid  *terrain.Grid
	)

	switch cfg.World.Kind {
	case "flat":
		grid = terrain.Flat(vec.Zero3, cfg.World.CellSize,
			cfg.World.Nx, cfg.World.Ny, cfg.World.Nz, cfg.World.Ground)
		world = grid
	case "terrain":
		opt := terrain.DefaultNoiseOptions(cfg.World.Nz)
		opt.SeaLevel = cfg.World.SeaLevel
		grid = terrain.Noise(vec.Zero3, cfg.World.CellSize,
			cfg.World.Nx, cfg.World.Ny, cfg.World.Nz, seed, opt)
		world = grid
	case "open":
		world = terrain.Open{}
	default:
		return nil, nil, fmt.Errorf("unknown world kind: %q", cfg.World.Kind)
	}

	sim, err := phys.New(world)
	if err != nil {
		return nil, nil, err
	}
	sim.SetGravity(vec.New(cfg.Gravity[0], cfg.Gravity[1], cfg.Gravity[2]))

	spawn(sim, cfg, grid, seed)
	return sim, grid, nil
}

// spawn scatters cfg.Particles.Count particles over a horizontal disc
// centered on the grid (or the origin for open worlds).
func spawn(sim *phys.Simulator, cfg *config.Config, grid *terrain.Grid, seed int64) {
	rng := rand.New(rand.NewSource(seed))

	cx, cy := 0.0, 0.0
	if grid != nil {
		origin, max := grid.Origin(), grid.Max()
		cx = (origin.X + max.X) / 2
		cy = (origin.Y + max.Y) / 2
	}

	pc := cfg.Particles
	v := vec.New(pc.Velocity[0], pc.Velocity[1], pc.Velocity[2])

	for i := 0; i < pc.Count; i++ {
		pos := vec.New(
			cx+(rng.Float64()*2-1)*pc.Scatter,
			cy+(rng.Float64()*2-1)*pc.Scatter,
			pc.Height+rng.Float64()*pc.Radius,
		)
		sim.AddParticle(phys.NewParticleAt(pc.Mass, pc.Radius, pos, v))
	}
}

// applyConfig resolves the effective scenario: preset (if named), then
// config file, then flags already bound by cobra.
func applyConfig(presetName, configPath string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	scenario := "custom"

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)",
				presetName, config.ListPresets())
		}
		cfg = p
		scenario = presetName
	}

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		scenario = "custom"
	}

	return cfg, scenario, nil
}
