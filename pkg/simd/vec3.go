package simd

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Vec3x4 stores four 3D vectors in structure-of-arrays layout
type Vec3x4 struct {
	X, Y, Z Float4
}

// PackVec3x4 gathers four scalar vectors into one pack
func PackVec3x4(v [4]core.Vec3) Vec3x4 {
	var r Vec3x4
	for i := range v {
		r.SetLane(i, v[i])
	}
	return r
}

// SplatVec3x4 broadcasts v to all lanes
func SplatVec3x4(v core.Vec3) Vec3x4 {
	return Vec3x4{X: SplatFloat4(v.X), Y: SplatFloat4(v.Y), Z: SplatFloat4(v.Z)}
}

// Lane extracts lane i as a scalar vector
func (v Vec3x4) Lane(i int) core.Vec3 {
	return core.Vec3{X: v.X[i], Y: v.Y[i], Z: v.Z[i]}
}

// SetLane overwrites lane i
func (v *Vec3x4) SetLane(i int, s core.Vec3) {
	v.X[i], v.Y[i], v.Z[i] = s.X, s.Y, s.Z
}

// Unpack splits the pack into scalar vectors
func (v Vec3x4) Unpack() [4]core.Vec3 {
	var r [4]core.Vec3
	for i := range r {
		r[i] = v.Lane(i)
	}
	return r
}

// Add performs lane-wise vector addition
func (v Vec3x4) Add(o Vec3x4) Vec3x4 {
	return Vec3x4{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Multiply scales every lane by s
func (v Vec3x4) Multiply(s float64) Vec3x4 {
	return Vec3x4{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// MultiplyVec multiplies component-wise
func (v Vec3x4) MultiplyVec(o Vec3x4) Vec3x4 {
	return Vec3x4{X: MulFloat4(v.X, o.X), Y: MulFloat4(v.Y, o.Y), Z: MulFloat4(v.Z, o.Z)}
}

// Dot returns the per-lane dot product
func (v Vec3x4) Dot(o Vec3x4) Float4 {
	return MulFloat4(v.X, o.X).Add(MulFloat4(v.Y, o.Y)).Add(MulFloat4(v.Z, o.Z))
}

// Vec3x8 stores eight 3D vectors in structure-of-arrays layout
type Vec3x8 struct {
	X, Y, Z Float8
}

// PackVec3x8 gathers eight scalar vectors into one pack
func PackVec3x8(v [8]core.Vec3) Vec3x8 {
	var r Vec3x8
	for i := range v {
		r.SetLane(i, v[i])
	}
	return r
}

// SplatVec3x8 broadcasts v to all lanes
func SplatVec3x8(v core.Vec3) Vec3x8 {
	return Vec3x8{X: SplatFloat8(v.X), Y: SplatFloat8(v.Y), Z: SplatFloat8(v.Z)}
}

// Lane extracts lane i as a scalar vector
func (v Vec3x8) Lane(i int) core.Vec3 {
	return core.Vec3{X: v.X[i], Y: v.Y[i], Z: v.Z[i]}
}

// SetLane overwrites lane i
func (v *Vec3x8) SetLane(i int, s core.Vec3) {
	v.X[i], v.Y[i], v.Z[i] = s.X, s.Y, s.Z
}

// Unpack splits the pack into scalar vectors
func (v Vec3x8) Unpack() [8]core.Vec3 {
	var r [8]core.Vec3
	for i := range r {
		r[i] = v.Lane(i)
	}
	return r
}

// Add performs lane-wise vector addition
func (v Vec3x8) Add(o Vec3x8) Vec3x8 {
	return Vec3x8{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Multiply scales every lane by s
func (v Vec3x8) Multiply(s float64) Vec3x8 {
	return Vec3x8{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// MultiplyVec multiplies component-wise
func (v Vec3x8) MultiplyVec(o Vec3x8) Vec3x8 {
	return Vec3x8{X: MulFloat8(v.X, o.X), Y: MulFloat8(v.Y, o.Y), Z: MulFloat8(v.Z, o.Z)}
}

// Dot returns the per-lane dot product
func (v Vec3x8) Dot(o Vec3x8) Float8 {
	return MulFloat8(v.X, o.X).Add(MulFloat8(v.Y, o.Y)).Add(MulFloat8(v.Z, o.Z))
}
