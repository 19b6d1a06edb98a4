// Package collision declares the seam for a future collision-detection
// subsystem. The integration core never calls it; it exists so that a
// broad phase can be slotted in without touching the engine's types.
package collision

import "github.com/kvat/celldrift/internal/vec"

// Shape is anything a broad phase can index. *phys.Particle satisfies it.
type Shape interface {
	// Position returns the shape's reference point.
	Position() vec.Vec3

	// Contains reports whether p lies inside the shape.
	Contains(p vec.Vec3) bool
}

// BroadPhase narrows candidate colliding shapes before exact checks.
// Implementations should aim to answer both queries as fast as possible.
type BroadPhase interface {
	Register(s Shape)

	// PossibleCollisionsNear returns the shapes that might contain p,
	// with false positives allowed.
	PossibleCollisionsNear(p vec.Vec3) []Shape

	// CollisionsAt returns exactly the shapes that contain p.
	CollisionsAt(p vec.Vec3) []Shape
}
