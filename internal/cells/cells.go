// Package cells provides the concrete cell variants used by celldrift
// worlds: impassable solid matter and drag-exerting fluids.
package cells

import (
	"math"

	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/vec"
)

// Dynamic viscosities likely to be used, in Pa*s.
const (
	AirViscosity   = 0.01983
	WaterViscosity = 0.001
)

// Default medium densities, in kg/m^3.
const (
	AirDensity   = 1.2
	WaterDensity = 1000.0
)

// Solid is impassable matter. It exerts no force and does not reduce
// gravity: it is the passability test that matters, a particle should
// never be resident in one.
type Solid struct{}

func (Solid) CanPass(*phys.Particle) bool     { return false }
func (Solid) Forces(*phys.Particle) vec.Vec3  { return vec.Zero3 }
func (Solid) Buoyancy(*phys.Particle) float64 { return 1.0 }

// Fluid is a passable medium with a dynamic viscosity and a density. It
// drags particles via Stokes' law and lifts them via Archimedes'
// principle, expressed as a fraction of gravity.
type Fluid struct {
	// Viscosity is the fluid's dynamic viscosity in Pa*s.
	Viscosity float64
	// Density is the fluid's density in kg/m^3.
	Density float64
}

// Air returns a fluid cell with the viscosity and density of air.
func Air() *Fluid {
	return &Fluid{Viscosity: AirViscosity, Density: AirDensity}
}

// Water returns a fluid cell with the viscosity and density of water.
func Water() *Fluid {
	return &Fluid{Viscosity: WaterViscosity, Density: WaterDensity}
}

func (*Fluid) CanPass(*phys.Particle) bool { return true }

// Forces returns the Stokes drag F = -6*pi*mu*r*v for the particle's
// radius and current velocity. Linear drag is only accurate at low
// Reynolds numbers, which is the regime this engine targets.
func (f *Fluid) Forces(p *phys.Particle) vec.Vec3 {
	k := 6.0 * math.Pi * f.Viscosity * p.Radius()
	return p.Velocity().Scaled(-k)
}

// Buoyancy returns the fraction of gravity left after the displaced
// fluid's lift: 1 - rho_fluid/rho_particle. A particle denser than the
// fluid sinks, a lighter one gets a negative fraction and rises.
func (f *Fluid) Buoyancy(p *phys.Particle) float64 {
	return 1.0 - f.Density/p.Density()
}
