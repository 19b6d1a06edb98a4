package run

import "github.com/kvat/celldrift/internal/phys"

// Metric aggregates a scalar over a run, observed once per step before
// the simulator advances.
type Metric interface {
	Name() string
	Observe(ps []*phys.Particle, t float64)
	Value() float64
	Reset()
}

// Observer is notified once per step before the simulator advances.
type Observer interface {
	OnStep(ps []*phys.Particle, t float64)
}

// Config shapes a run session.
type Config struct {
	Dt       float64
	Duration float64
	Seed     int64

	// SampleEvery records a trajectory sample every n-th step; 0 or 1
	// records every step.
	SampleEvery int

	// ValidateState stops the run with ErrDiverged as soon as any
	// particle turns non-finite. The core itself never checks.
	ValidateState bool
}

// DefaultConfig returns a config suitable for interactive use.
func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		SampleEvery:   1,
		ValidateState: true,
	}
}

// Frame is one recorded snapshot of every registered particle.
type Frame struct {
	Time      float64
	Positions []Point
}

// Point is a recorded particle sample.
type Point struct {
	X, Y, Z    float64
	VX, VY, VZ float64
}

// Result collects everything a run produced.
type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int

	// Moved and Blocked total the per-step simulator tallies.
	Moved   int
	Blocked int

	Errors []error
}
