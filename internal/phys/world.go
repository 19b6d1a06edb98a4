package phys

import "github.com/kvat/celldrift/internal/vec"

// World is the spatial oracle the simulator queries every step. It is a
// pure read surface over an opaque partition (uniform grid, octree, ...);
// the core never asks it to mutate anything.
type World interface {
	// OverBounds reports whether p lies outside the world.
	OverBounds(p vec.Vec3) bool

	// CellAt returns the cell containing p. It must return a valid cell
	// for every in-bounds point; what it does for out-of-bounds points is
	// the implementation's own business.
	CellAt(p vec.Vec3) Cell

	// SameCell reports whether a and b resolve to the same cell.
	SameCell(a, b vec.Vec3) bool

	// CanMoveTo reports whether a particle currently at from may legally
	// occupy to. It encapsulates passability, bounds and any other
	// world-specific transition rule.
	CanMoveTo(from, to vec.Vec3) bool
}
