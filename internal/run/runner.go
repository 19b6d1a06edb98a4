// Package run drives a phys.Simulator over a time span: fixed-step
// stepping with context cancellation, trajectory recording, metrics and
// observers. The simulator itself knows nothing about durations or
// sampling; that separation keeps the integration core a pure library.
package run

import (
	"context"
	"fmt"

	"github.com/kvat/celldrift/internal/phys"
)

type Runner struct {
	sim       *phys.Simulator
	metrics   []Metric
	observers []Observer
}

func New(sim *phys.Simulator) *Runner {
	return &Runner{
		sim:       sim,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Simulator() *phys.Simulator { return r.sim }

// Run advances the simulation for cfg.Duration in steps of cfg.Dt,
// recording frames and metrics. A canceled context returns the partial
// result together with the context's error. A particle diverging under
// cfg.ValidateState stops the sweep and records phys.ErrDiverged.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	every := cfg.SampleEvery
	if every < 1 {
		every = 1
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps/every+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.Frames = append(result.Frames, snapshot(r.sim.Particles(), t))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			finish(result, r.metrics)
			return result, ctx.Err()
		default:
		}

		ps := r.sim.Particles()
		for _, m := range r.metrics {
			m.Observe(ps, t)
		}
		for _, o := range r.observers {
			o.OnStep(ps, t)
		}

		r.sim.Update(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		stats := r.sim.LastStats()
		result.Moved += stats.Moved
		result.Blocked += stats.Blocked

		if cfg.ValidateState {
			if p := diverged(r.sim.Particles()); p != nil {
				result.Errors = append(result.Errors,
					fmt.Errorf("step %d (t=%.4f): %w", i, t, phys.ErrDiverged))
				break
			}
		}

		if (i+1)%every == 0 {
			result.Frames = append(result.Frames, snapshot(r.sim.Particles(), t))
		}
	}

	finish(result, r.metrics)
	return result, nil
}

// RunWithCallback advances the simulation, handing every step to the
// callback before it happens. Returning false stops the run cleanly.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(ps []*phys.Particle, t float64) bool) error {
	if err := validate(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(r.sim.Particles(), t) {
			return nil
		}

		r.sim.Update(cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState {
			if p := diverged(r.sim.Particles()); p != nil {
				return fmt.Errorf("t=%.4f: %w", t, phys.ErrDiverged)
			}
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func diverged(ps []*phys.Particle) *phys.Particle {
	for _, p := range ps {
		if !p.Center().IsFinite() || !p.Velocity().IsFinite() {
			return p
		}
	}
	return nil
}

func snapshot(ps []*phys.Particle, t float64) Frame {
	frame := Frame{Time: t, Positions: make([]Point, len(ps))}
	for i, p := range ps {
		c, v := p.Center(), p.Velocity()
		frame.Positions[i] = Point{
			X: c.X, Y: c.Y, Z: c.Z,
			VX: v.X, VY: v.Y, VZ: v.Z,
		}
	}
	return frame
}

func finish(result *Result, metrics []Metric) {
	for _, m := range metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
