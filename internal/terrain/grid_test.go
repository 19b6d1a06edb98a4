package terrain

import (
	"testing"

	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/vec"
)

var _ phys.World = (*Grid)(nil)

func TestGridBounds(t *testing.T) {
	g := NewGrid(vec.New(0, 0, 0), 1.0, 4, 4, 4)

	tests := []struct {
		name string
		p    vec.Vec3
		out  bool
	}{
		{"inside", vec.New(2, 2, 2), false},
		{"min corner", vec.New(0, 0, 0), false},
		{"below min", vec.New(-0.1, 2, 2), true},
		{"at max face", vec.New(4, 2, 2), true},
		{"above max", vec.New(2, 2, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.OverBounds(tt.p); got != tt.out {
				t.Errorf("OverBounds(%v) = %v, want %v", tt.p, got, tt.out)
			}
		})
	}
}

func TestGridMaterialsAndCells(t *testing.T) {
	g := NewGrid(vec.New(0, 0, 0), 1.0, 4, 4, 4)
	g.SetMaterial(1, 1, 0, Solid)
	g.SetMaterial(1, 1, 1, Water)

	if m := g.MaterialAt(vec.New(1.5, 1.5, 0.5)); m != Solid {
		t.Errorf("expected solid, got %v", m)
	}
	if m := g.MaterialAt(vec.New(1.5, 1.5, 1.5)); m != Water {
		t.Errorf("expected water, got %v", m)
	}
	if m := g.MaterialAt(vec.New(3.5, 3.5, 3.5)); m != Air {
		t.Errorf("expected air, got %v", m)
	}
	// beyond the box is bedrock
	if m := g.MaterialAt(vec.New(-1, 0, 0)); m != Solid {
		t.Errorf("expected solid out of bounds, got %v", m)
	}

	p := phys.NewParticle()
	if g.CellAt(vec.New(1.5, 1.5, 0.5)).CanPass(p) {
		t.Error("solid cell should not be passable")
	}
	if !g.CellAt(vec.New(1.5, 1.5, 1.5)).CanPass(p) {
		t.Error("water cell should be passable")
	}
	if b := g.CellAt(vec.New(3.5, 3.5, 3.5)).Buoyancy(p); b >= 1.0 {
		t.Errorf("air buoyancy should be below 1 for a light particle, got %f", b)
	}
}

func TestGridSameCell(t *testing.T) {
	g := NewGrid(vec.New(0, 0, 0), 2.0, 4, 4, 4)

	if !g.SameCell(vec.New(0.1, 0.1, 0.1), vec.New(1.9, 1.9, 1.9)) {
		t.Error("points in the same cell reported as different")
	}
	if g.SameCell(vec.New(0.1, 0.1, 0.1), vec.New(2.1, 0.1, 0.1)) {
		t.Error("points in different cells reported as same")
	}
	if g.SameCell(vec.New(0.1, 0.1, 0.1), vec.New(-1, 0, 0)) {
		t.Error("out-of-bounds point can share no cell")
	}
}

func TestGridCanMoveTo(t *testing.T) {
	g := Flat(vec.New(0, 0, 0), 1.0, 8, 8, 8, 2)

	from := vec.New(4, 4, 4.5)
	if !g.CanMoveTo(from, vec.New(4, 4, 2.5)) {
		t.Error("move into air should be allowed")
	}
	if g.CanMoveTo(from, vec.New(4, 4, 1.5)) {
		t.Error("move into the ground should be refused")
	}
	if g.CanMoveTo(from, vec.New(4, 4, 9)) {
		t.Error("move out of bounds should be refused")
	}
}

func TestFlatGroundStopsFall(t *testing.T) {
	g := Flat(vec.New(0, 0, 0), 1.0, 8, 8, 8, 2)
	sim, err := phys.New(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := phys.NewParticleAt(1, 0.1, vec.New(4, 4, 6), vec.Vec3{})
	sim.AddParticle(p)

	for i := 0; i < 2000; i++ {
		sim.Update(0.01)
	}

	if p.Center().Z < 2.0 {
		t.Errorf("particle ended inside the ground at z=%f", p.Center().Z)
	}
	if p.Center().Z > 2.2 {
		t.Errorf("particle should have settled near the ground, got z=%f", p.Center().Z)
	}
	if p.Velocity().Length() > 1e-3 {
		t.Errorf("particle should be nearly at rest, |v|=%f", p.Velocity().Length())
	}
}

func TestNoiseTerrainLayers(t *testing.T) {
	opt := DefaultNoiseOptions(16)
	g := Noise(vec.New(0, 0, 0), 1.0, 16, 16, 16, 42, opt)

	solids, waters, airs := 0, 0, 0
	for k := 0; k < 16; k++ {
		for j := 0; j < 16; j++ {
			for i := 0; i < 16; i++ {
				switch g.mats[g.index(i, j, k)] {
				case Solid:
					solids++
				case Water:
					waters++
				default:
					airs++
				}
			}
		}
	}

	if solids == 0 || airs == 0 {
		t.Fatalf("terrain should contain both solid and air, got %d/%d", solids, airs)
	}

	// determinism per seed
	h := Noise(vec.New(0, 0, 0), 1.0, 16, 16, 16, 42, opt)
	for i := range g.mats {
		if g.mats[i] != h.mats[i] {
			t.Fatal("same seed should generate the same terrain")
		}
	}
	if waters == 0 {
		t.Log("no water generated at this seed/sea level")
	}
}
