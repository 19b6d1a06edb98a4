package metrics

import (
	"math"
	"testing"

	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/run"
	"github.com/kvat/celldrift/internal/vec"
)

var (
	_ run.Metric = (*KineticEnergy)(nil)
	_ run.Metric = (*MaxSpeed)(nil)
	_ run.Metric = (*Spread)(nil)
)

func TestKineticEnergy(t *testing.T) {
	ps := []*phys.Particle{
		phys.NewParticleAt(2, 1, vec.Vec3{}, vec.New(3, 0, 0)), // 0.5*2*9 = 9
		phys.NewParticleAt(1, 1, vec.Vec3{}, vec.New(0, 4, 0)), // 0.5*1*16 = 8
	}

	m := NewKineticEnergy()
	m.Observe(ps, 0)
	if m.Value() != 17 {
		t.Errorf("expected 17, got %f", m.Value())
	}

	// average over two observations
	ps[1].SetVelocity(vec.Vec3{})
	m.Observe(ps, 1)
	if m.Value() != 13 {
		t.Errorf("expected mean 13, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should zero the metric")
	}
}

func TestMaxSpeed(t *testing.T) {
	ps := []*phys.Particle{
		phys.NewParticleAt(1, 1, vec.Vec3{}, vec.New(3, 4, 0)), // speed 5
		phys.NewParticleAt(1, 1, vec.Vec3{}, vec.New(0, 0, 2)),
	}

	m := NewMaxSpeed()
	m.Observe(ps, 0)
	if m.Value() != 5 {
		t.Errorf("expected 5, got %f", m.Value())
	}

	// the maximum is sticky across observations
	ps[0].SetVelocity(vec.Vec3{})
	m.Observe(ps, 1)
	if m.Value() != 5 {
		t.Errorf("expected sticky 5, got %f", m.Value())
	}
}

func TestSpread(t *testing.T) {
	ps := []*phys.Particle{
		phys.NewParticleAt(1, 1, vec.New(-1, 0, 0), vec.Vec3{}),
		phys.NewParticleAt(1, 1, vec.New(1, 0, 0), vec.Vec3{}),
	}

	m := NewSpread()
	m.Observe(ps, 0)
	if math.Abs(m.Value()-1) > 1e-12 {
		t.Errorf("expected spread 1, got %f", m.Value())
	}

	m.Observe(nil, 1)
	if m.Value() != 0 {
		t.Errorf("empty registry should have zero spread, got %f", m.Value())
	}
}
