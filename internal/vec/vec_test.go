package vec

import (
	"math"
	"testing"
)

func TestInPlaceOps(t *testing.T) {
	v := New(1, 2, 3)

	v.Add(New(1, 1, 1))
	if v != New(2, 3, 4) {
		t.Errorf("after Add: got %v", v)
	}

	v.Sub(New(2, 2, 2))
	if v != New(0, 1, 2) {
		t.Errorf("after Sub: got %v", v)
	}

	v.Scale(3)
	if v != New(0, 3, 6) {
		t.Errorf("after Scale: got %v", v)
	}

	v.Div(3)
	if v != New(0, 1, 2) {
		t.Errorf("after Div: got %v", v)
	}

	v.AddScaled(New(1, 1, 1), 0.5)
	if v != New(0.5, 1.5, 2.5) {
		t.Errorf("after AddScaled: got %v", v)
	}
}

func TestSetCopiesValues(t *testing.T) {
	src := New(4, 5, 6)
	var dst Vec3
	dst.Set(src)

	src.X = 99
	if dst.X != 4 {
		t.Error("Set should copy components, not alias")
	}
}

func TestLengthAndDist(t *testing.T) {
	v := New(3, 4, 0)
	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}
	if d := v.Dist(New(3, 4, 12)); d != 12 {
		t.Errorf("expected dist 12, got %f", d)
	}
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2, 3).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if New(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if New(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}

func TestZeroValueIsZeroVector(t *testing.T) {
	if Zero3 != (Vec3{}) {
		t.Error("Zero3 should be the zero value")
	}
}
