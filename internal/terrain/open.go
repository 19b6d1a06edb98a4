package terrain

import (
	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/vec"
)

// Open is a boundless vacuum: every point is the same forceless,
// full-gravity cell and every transition is allowed. Useful for
// free-flight scenarios and as the simplest possible World.
type Open struct{}

type voidCell struct{}

func (voidCell) CanPass(*phys.Particle) bool     { return true }
func (voidCell) Forces(*phys.Particle) vec.Vec3  { return vec.Zero3 }
func (voidCell) Buoyancy(*phys.Particle) float64 { return 1.0 }

func (Open) OverBounds(vec.Vec3) bool         { return false }
func (Open) CellAt(vec.Vec3) phys.Cell        { return voidCell{} }
func (Open) SameCell(a, b vec.Vec3) bool      { return true }
func (Open) CanMoveTo(from, to vec.Vec3) bool { return true }
