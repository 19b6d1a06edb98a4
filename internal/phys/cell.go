package phys

import "github.com/kvat/celldrift/internal/vec"

// Cell answers the physical properties of one region of the world for a
// given particle. Properties may depend on the particle (its radius,
// velocity or density), so every query takes the particle as an argument.
//
// All three methods must be pure: no hidden state mutation, and safe to
// call with a particle that is not currently inside the cell (CanPass is
// used as a look-ahead before the particle has moved). Forces returns its
// vector by value, so a cell backed by a shared constant can never be
// corrupted through the return.
type Cell interface {
	// CanPass reports whether p may occupy this cell.
	CanPass(p *Particle) bool

	// Forces returns the external force (excluding gravity) acting on p
	// while it resides in this cell, e.g. fluid drag.
	Forces(p *Particle) vec.Vec3

	// Buoyancy returns the fraction of gravity that applies to p inside
	// this cell: 1 means full gravity, 0 means neutrally buoyant.
	Buoyancy(p *Particle) float64
}
