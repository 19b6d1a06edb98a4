package phys

import (
	"fmt"
	"math"

	"github.com/kvat/celldrift/internal/vec"
)

// Particle is a spherical point mass. Density is always derived from mass
// and radius, never set directly; the setters keep mass, inverse mass and
// density in sync. The previous center is retained whenever the center is
// overwritten, giving a one-step position history.
type Particle struct {
	center    vec.Vec3
	oldCenter vec.Vec3
	vel       vec.Vec3
	acc       vec.Vec3

	radius     float64
	mass       float64
	invmass    float64
	density    float64
	bounciness float64
}

// sphereDensity returns the density of a sphere of the given mass and radius.
func sphereDensity(mass, radius float64) float64 {
	return mass / (4.0 / 3.0 * math.Pi * radius * radius * radius)
}

// NewParticle returns a unit-mass, unit-radius particle at the origin with
// zero motion.
func NewParticle() *Particle {
	return &Particle{
		radius:  1.0,
		mass:    1.0,
		invmass: 1.0,
		density: sphereDensity(1.0, 1.0),
	}
}

// NewParticleAt returns a particle with explicit mass, radius, position and
// velocity. Mass and radius are not validated; a non-positive mass yields
// the same NaN/Inf arithmetic the integrator would produce anyway.
func NewParticleAt(mass, radius float64, pos, vel vec.Vec3) *Particle {
	return &Particle{
		center:    pos,
		oldCenter: pos,
		vel:       vel,
		radius:    radius,
		mass:      mass,
		invmass:   1.0 / mass,
		density:   sphereDensity(mass, radius),
	}
}

// Center returns the particle's current position, owned by the particle.
func (p *Particle) Center() *vec.Vec3 { return &p.center }

// OldCenter returns the position before the last committed update.
func (p *Particle) OldCenter() *vec.Vec3 { return &p.oldCenter }

// Velocity returns the particle's velocity vector, owned by the particle.
func (p *Particle) Velocity() *vec.Vec3 { return &p.vel }

// Acceleration returns the acceleration computed during the last update.
// It is kept for introspection only; the next step recomputes it from
// scratch.
func (p *Particle) Acceleration() *vec.Vec3 { return &p.acc }

func (p *Particle) Radius() float64     { return p.radius }
func (p *Particle) Mass() float64       { return p.mass }
func (p *Particle) InvMass() float64    { return p.invmass }
func (p *Particle) Density() float64    { return p.density }
func (p *Particle) Bounciness() float64 { return p.bounciness }

// SetCenter copies c into the particle's center, first saving the current
// center as the old center.
func (p *Particle) SetCenter(c vec.Vec3) {
	p.oldCenter.Set(p.center)
	p.center.Set(c)
}

// SetVelocity copies v into the particle's velocity.
func (p *Particle) SetVelocity(v vec.Vec3) {
	p.vel.Set(v)
}

// SetMass overwrites the particle's mass and recomputes the inverse mass
// and the density.
func (p *Particle) SetMass(mass float64) {
	p.mass = mass
	p.invmass = 1.0 / mass
	p.density = sphereDensity(mass, p.radius)
}

// SetInvMass overwrites the particle's inverse mass and recomputes the
// mass and the density.
func (p *Particle) SetInvMass(invmass float64) {
	p.invmass = invmass
	p.mass = 1.0 / invmass
	p.density = sphereDensity(p.mass, p.radius)
}

// SetRadius overwrites the particle's radius and recomputes the density.
func (p *Particle) SetRadius(radius float64) {
	p.radius = radius
	p.density = sphereDensity(p.mass, radius)
}

func (p *Particle) SetBounciness(b float64) {
	p.bounciness = b
}

// Position returns the particle's center by value, satisfying the
// collision package's Shape contract.
func (p *Particle) Position() vec.Vec3 { return p.center }

// Contains reports whether q lies inside the particle's sphere.
func (p *Particle) Contains(q vec.Vec3) bool {
	return p.center.Dist(q) <= p.radius
}

func (p *Particle) String() string {
	return fmt.Sprintf("[%v, vel: %v, acc: %v, invmass: %f]", p.center, p.vel, p.acc, p.invmass)
}
