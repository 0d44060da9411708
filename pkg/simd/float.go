package simd

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Float4 is a 4-lane float64 vector
type Float4 = mgl64.Vec4

// Float8 is an 8-lane float64 vector
type Float8 [8]float64

// SplatFloat4 broadcasts s to all lanes
func SplatFloat4(s float64) Float4 {
	return Float4{s, s, s, s}
}

// MulFloat4 multiplies two packs lane by lane
func MulFloat4(a, b Float4) Float4 {
	var r Float4
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// SplatFloat8 broadcasts s to all lanes
func SplatFloat8(s float64) Float8 {
	var r Float8
	for i := range r {
		r[i] = s
	}
	return r
}

// Add performs lane-wise addition
func (f Float8) Add(o Float8) Float8 {
	var r Float8
	for i := range f {
		r[i] = f[i] + o[i]
	}
	return r
}

// Sub performs lane-wise subtraction
func (f Float8) Sub(o Float8) Float8 {
	var r Float8
	for i := range f {
		r[i] = f[i] - o[i]
	}
	return r
}

// Mul scales every lane by s
func (f Float8) Mul(s float64) Float8 {
	var r Float8
	for i := range f {
		r[i] = f[i] * s
	}
	return r
}

// MulFloat8 multiplies two packs lane by lane
func MulFloat8(a, b Float8) Float8 {
	var r Float8
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// Low returns lanes 0..3
func (f Float8) Low() Float4 {
	return Float4{f[0], f[1], f[2], f[3]}
}

// High returns lanes 4..7
func (f Float8) High() Float4 {
	return Float4{f[4], f[5], f[6], f[7]}
}

// CombineFloat8 joins two 4-lane packs into one 8-lane pack
func CombineFloat8(lo, hi Float4) Float8 {
	return Float8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}
