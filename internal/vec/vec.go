// Package vec provides the three-component vector used throughout the
// engine. Vec3 is a plain value type; the in-place pointer methods exist
// for the integrator's hot loop, the value methods for everyone else.
package vec

import "math"

// Zero3 is the zero vector. Because Vec3 is passed and returned by value,
// callers can never mutate a shared instance through it.
var Zero3 = Vec3{}

type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Set overwrites v with the components of o.
func (v *Vec3) Set(o Vec3) {
	v.X, v.Y, v.Z = o.X, o.Y, o.Z
}

func (v *Vec3) SetXYZ(x, y, z float64) {
	v.X, v.Y, v.Z = x, y, z
}

func (v *Vec3) Add(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

func (v *Vec3) Sub(o Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

func (v *Vec3) Scale(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

func (v *Vec3) Div(s float64) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

func (v *Vec3) Clear() {
	v.X, v.Y, v.Z = 0, 0, 0
}

// AddScaled adds s*o to v in place without allocating a temporary.
func (v *Vec3) AddScaled(o Vec3, s float64) {
	v.X += o.X * s
	v.Y += o.Y * s
	v.Z += o.Z * s
}

func (v Vec3) Added(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Subbed(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scaled(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the componentwise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Subbed(o).Length()
}

// IsFinite reports whether all components are finite. NaN and Inf are not
// rejected anywhere in the engine, but they mark a failed simulation.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
