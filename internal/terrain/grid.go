// Package terrain provides a concrete uniform-grid world for the engine:
// a box of equally sized cells, each carrying a material that decides
// passability, drag and buoyancy.
package terrain

import (
	"github.com/kvat/celldrift/internal/cells"
	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/vec"
)

// Material tags what fills a grid cell.
type Material uint8

const (
	Air Material = iota
	Water
	Solid
)

func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Water:
		return "water"
	case Solid:
		return "solid"
	}
	return "unknown"
}

// Grid is a uniform axis-aligned grid of material cells implementing
// phys.World. The same three cell values are shared by every grid slot of
// the same material; that is safe because cells are stateless and their
// force vectors are returned by value.
type Grid struct {
	origin   vec.Vec3
	cellSize float64

	nx, ny, nz int
	mats       []Material

	air   phys.Cell
	water phys.Cell
	solid phys.Cell
}

// NewGrid returns an all-air grid of nx*ny*nz cells of the given edge
// length, with its minimum corner at origin.
func NewGrid(origin vec.Vec3, cellSize float64, nx, ny, nz int) *Grid {
	return &Grid{
		origin:   origin,
		cellSize: cellSize,
		nx:       nx,
		ny:       ny,
		nz:       nz,
		mats:     make([]Material, nx*ny*nz),
		air:      cells.Air(),
		water:    cells.Water(),
		solid:    cells.Solid{},
	}
}

func (g *Grid) Size() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Origin returns the grid's minimum corner.
func (g *Grid) Origin() vec.Vec3 { return g.origin }

func (g *Grid) CellSize() float64 { return g.cellSize }

// Max returns the corner of the grid opposite to its origin.
func (g *Grid) Max() vec.Vec3 {
	return vec.New(
		g.origin.X+float64(g.nx)*g.cellSize,
		g.origin.Y+float64(g.ny)*g.cellSize,
		g.origin.Z+float64(g.nz)*g.cellSize,
	)
}

func (g *Grid) index(i, j, k int) int { return (k*g.ny+j)*g.nx + i }

// locate maps a point to cell coordinates. ok is false out of bounds.
func (g *Grid) locate(p vec.Vec3) (i, j, k int, ok bool) {
	i = int((p.X - g.origin.X) / g.cellSize)
	j = int((p.Y - g.origin.Y) / g.cellSize)
	k = int((p.Z - g.origin.Z) / g.cellSize)
	// the index checks also catch NaN coordinates, which convert to
	// out-of-range ints
	if p.X < g.origin.X || p.Y < g.origin.Y || p.Z < g.origin.Z ||
		i < 0 || j < 0 || k < 0 || i >= g.nx || j >= g.ny || k >= g.nz {
		return 0, 0, 0, false
	}
	return i, j, k, true
}

// SetMaterial sets the material of cell (i, j, k). Out-of-range indices
// are ignored.
func (g *Grid) SetMaterial(i, j, k int, m Material) {
	if i < 0 || j < 0 || k < 0 || i >= g.nx || j >= g.ny || k >= g.nz {
		return
	}
	g.mats[g.index(i, j, k)] = m
}

// MaterialAt returns the material of the cell containing p. Points out of
// bounds report Solid, treating everything beyond the box as bedrock.
func (g *Grid) MaterialAt(p vec.Vec3) Material {
	i, j, k, ok := g.locate(p)
	if !ok {
		return Solid
	}
	return g.mats[g.index(i, j, k)]
}

// OverBounds reports whether p lies outside the grid's box.
func (g *Grid) OverBounds(p vec.Vec3) bool {
	_, _, _, ok := g.locate(p)
	return !ok
}

// CellAt returns the cell containing p. Out-of-bounds points get the
// solid cell, which doubles as the boundary handler.
func (g *Grid) CellAt(p vec.Vec3) phys.Cell {
	switch g.MaterialAt(p) {
	case Water:
		return g.water
	case Solid:
		return g.solid
	}
	return g.air
}

// SameCell reports whether a and b fall into the same grid cell.
func (g *Grid) SameCell(a, b vec.Vec3) bool {
	ia, ja, ka, oka := g.locate(a)
	ib, jb, kb, okb := g.locate(b)
	if !oka || !okb {
		return false
	}
	return ia == ib && ja == jb && ka == kb
}

// CanMoveTo reports whether a particle at from may occupy to: the
// destination must be in bounds and not solid. Where the particle came
// from does not matter for a material grid, but the signature leaves room
// for worlds with directional rules.
func (g *Grid) CanMoveTo(from, to vec.Vec3) bool {
	i, j, k, ok := g.locate(to)
	if !ok {
		return false
	}
	return g.mats[g.index(i, j, k)] != Solid
}
