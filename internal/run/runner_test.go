package run

import (
	"context"
	"math"
	"testing"

	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/terrain"
	"github.com/kvat/celldrift/internal/vec"
)

func openScene(t *testing.T) *Runner {
	t.Helper()
	g := terrain.NewGrid(vec.New(-50, -50, -50), 1.0, 100, 100, 100)
	sim, err := phys.New(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sim.AddParticle(phys.NewParticleAt(1, 0.1, vec.New(0, 0, 40), vec.Vec3{}))
	return New(sim)
}

func TestRunRecordsFrames(t *testing.T) {
	r := openScene(t)

	cfg := DefaultConfig()
	cfg.Duration = 1.0

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}
	// initial frame plus one per step
	if len(result.Frames) != 101 {
		t.Errorf("expected 101 frames, got %d", len(result.Frames))
	}

	first := result.Frames[0].Positions[0]
	last := result.Frames[len(result.Frames)-1].Positions[0]
	if last.Z >= first.Z {
		t.Errorf("particle should have fallen: %f -> %f", first.Z, last.Z)
	}
	if result.Moved != 100 {
		t.Errorf("every step should have moved the particle, got %d", result.Moved)
	}
}

func TestRunSampling(t *testing.T) {
	r := openScene(t)

	cfg := DefaultConfig()
	cfg.Duration = 1.0
	cfg.SampleEvery = 10

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Frames) != 11 {
		t.Errorf("expected 11 frames, got %d", len(result.Frames))
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := openScene(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1}},
		{"negative dt", Config{Dt: -0.1, Duration: 1}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunCancellation(t *testing.T) {
	r := openScene(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, DefaultConfig())
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil {
		t.Fatal("expected partial result")
	}
	if result.StepsTaken != 0 {
		t.Errorf("expected no steps after immediate cancel, got %d", result.StepsTaken)
	}
}

func TestRunStopsOnDivergence(t *testing.T) {
	// a boundless world lets the NaN position commit; a grid would
	// classify it as out of bounds and block it instead
	sim, _ := phys.New(terrain.Open{})

	// zero mass divides to Inf in the first step
	sim.AddParticle(phys.NewParticleAt(0, 0.1, vec.New(0, 0, 0), vec.Vec3{}))
	r := New(sim)

	cfg := DefaultConfig()
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("divergence is reported in Errors, not the return: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected a divergence error")
	}
	if result.StepsTaken >= 100 {
		t.Error("run should have stopped early")
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := openScene(t)

	calls := 0
	err := r.RunWithCallback(context.Background(), DefaultConfig(), func(ps []*phys.Particle, t float64) bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 callback calls, got %d", calls)
	}
}

type countingMetric struct{ n int }

func (m *countingMetric) Name() string                           { return "count" }
func (m *countingMetric) Observe(ps []*phys.Particle, t float64) { m.n++ }
func (m *countingMetric) Value() float64                         { return float64(m.n) }
func (m *countingMetric) Reset()                                 { m.n = 0 }

func TestMetricsObservedAndCollected(t *testing.T) {
	r := openScene(t)
	r.AddMetric(&countingMetric{})

	cfg := DefaultConfig()
	cfg.Duration = 0.5

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := result.Metrics["count"]; got != 50 {
		t.Errorf("expected metric observed 50 times, got %f", got)
	}
}

func TestEnsembleRunsAllSeeds(t *testing.T) {
	factory := func(seed int64) (*Runner, error) {
		g := terrain.Noise(vec.New(0, 0, 0), 1.0, 16, 16, 32, seed, terrain.DefaultNoiseOptions(32))
		sim, err := phys.New(g)
		if err != nil {
			return nil, err
		}
		sim.AddParticle(phys.NewParticleAt(1, 0.1, vec.New(8, 8, 30), vec.Vec3{}))
		return New(sim), nil
	}

	cfg := DefaultConfig()
	cfg.Duration = 1.0

	results, err := NewEnsemble(factory, 4, 7).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, res := range results {
		if res == nil || res.StepsTaken == 0 {
			t.Errorf("member %d produced no steps", i)
		}
	}
}

func TestFramesCarryVelocities(t *testing.T) {
	r := openScene(t)

	cfg := DefaultConfig()
	cfg.Duration = 0.1

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	last := result.Frames[len(result.Frames)-1].Positions[0]
	if last.VZ >= 0 || math.IsNaN(last.VZ) {
		t.Errorf("expected a downward velocity, got %f", last.VZ)
	}
}
