// Package metrics provides run.Metric implementations over the particle
// registry.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kvat/celldrift/internal/phys"
)

// KineticEnergy averages the registry's total kinetic energy over a run.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(ps []*phys.Particle, t float64) {
	sum := 0.0
	for _, p := range ps {
		sum += 0.5 * p.Mass() * p.Velocity().LengthSq()
	}
	k.total += sum
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// MaxSpeed records the fastest speed any particle reached during a run.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(ps []*phys.Particle, t float64) {
	for _, p := range ps {
		if s := p.Velocity().Length(); s > m.max {
			m.max = s
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }

// Spread measures how far the swarm has dispersed: the RMS distance of
// the particles from their centroid, at the last observed step.
type Spread struct {
	value float64
}

func NewSpread() *Spread { return &Spread{} }

func (s *Spread) Name() string { return "spread" }

func (s *Spread) Observe(ps []*phys.Particle, t float64) {
	n := len(ps)
	if n == 0 {
		s.value = 0
		return
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, p := range ps {
		c := p.Center()
		xs[i], ys[i], zs[i] = c.X, c.Y, c.Z
	}

	cx := stat.Mean(xs, nil)
	cy := stat.Mean(ys, nil)
	cz := stat.Mean(zs, nil)

	sum := 0.0
	for i := range xs {
		dx, dy, dz := xs[i]-cx, ys[i]-cy, zs[i]-cz
		sum += dx*dx + dy*dy + dz*dz
	}
	s.value = math.Sqrt(sum / float64(n))
}

func (s *Spread) Value() float64 { return s.value }

func (s *Spread) Reset() { s.value = 0 }
