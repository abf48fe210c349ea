package occluder

import "math"

// Vec3 is a world-space point or direction. Kept as three float32 fields
// rather than an array, matching the value semantics of a tessellation
// vertex — no aliasing between callers.
type Vec3 struct {
	X, Y, Z float32
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vec3) Scale(f float32) Vec3 {
	return Vec3{a.X * f, a.Y * f, a.Z * f}
}

func (a Vec3) Abs() Vec3 {
	return Vec3{float32(math.Abs(float64(a.X))), float32(math.Abs(float64(a.Y))), float32(math.Abs(float64(a.Z)))}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func minf(a, b float32) float32 {
	return float32(math.Min(float64(a), float64(b)))
}

func maxf(a, b float32) float32 {
	return float32(math.Max(float64(a), float64(b)))
}

// vec3Min returns the componentwise minimum.
func vec3Min(a, b Vec3) Vec3 {
	return Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

// vec3Max returns the componentwise maximum.
func vec3Max(a, b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

// UVec3 addresses a cell in the voxel grid. All three components are
// non-negative by construction; dimensions fit comfortably in uint32 for
// any grid this pipeline is meant to run on (spec ceiling ~2^10 per side).
type UVec3 struct {
	X, Y, Z uint32
}

// Flatten linearizes a cell coordinate as x + Dx*y + Dx*Dy*z. Reverse
// mapping is Unflatten; the two must round-trip exactly for every cell in
// range (spec invariant 5).
func Flatten(p UVec3, dim UVec3) uint32 {
	return p.X + dim.X*p.Y + dim.X*dim.Y*p.Z
}

// Unflatten inverts Flatten.
func Unflatten(index uint32, dim UVec3) UVec3 {
	dimXY := dim.X * dim.Y
	z := index / dimXY
	index -= z * dimXY
	y := index / dim.X
	x := index % dim.X
	return UVec3{x, y, z}
}
