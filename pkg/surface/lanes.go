package surface

import (
	"github.com/df07/go-surface-resolver/pkg/simd"
)

// Surface4 is a 4-wide packet of surfaces in structure-of-arrays form.
// All lanes of a packet come from one bundle, so HasTint is shared.
type Surface4[M any] struct {
	Normal   simd.Vec3x4
	Material [4]M
	Tint     simd.Vec3x4
	HasTint  bool
}

// Pack4 gathers four scalar surfaces into a packet
func Pack4[M any](s [4]Surface[M]) Surface4[M] {
	var p Surface4[M]
	for i := range s {
		p.Normal.SetLane(i, s[i].Normal)
		p.Material[i] = s[i].Material
		p.Tint.SetLane(i, s[i].Tint)
	}
	p.HasTint = s[0].HasTint
	return p
}

// Lane extracts lane i as a scalar surface
func (s Surface4[M]) Lane(i int) Surface[M] {
	return Surface[M]{
		Normal:   s.Normal.Lane(i),
		Material: s.Material[i],
		Tint:     s.Tint.Lane(i),
		HasTint:  s.HasTint,
	}
}

// Unpack scatters the packet into scalar surfaces
func (s Surface4[M]) Unpack() [4]Surface[M] {
	var out [4]Surface[M]
	for i := range out {
		out[i] = s.Lane(i)
	}
	return out
}

// Surface8 is an 8-wide packet of surfaces in structure-of-arrays form
type Surface8[M any] struct {
	Normal   simd.Vec3x8
	Material [8]M
	Tint     simd.Vec3x8
	HasTint  bool
}

// Pack8 gathers eight scalar surfaces into a packet
func Pack8[M any](s [8]Surface[M]) Surface8[M] {
	var p Surface8[M]
	for i := range s {
		p.Normal.SetLane(i, s[i].Normal)
		p.Material[i] = s[i].Material
		p.Tint.SetLane(i, s[i].Tint)
	}
	p.HasTint = s[0].HasTint
	return p
}

// Lane extracts lane i as a scalar surface
func (s Surface8[M]) Lane(i int) Surface[M] {
	return Surface[M]{
		Normal:   s.Normal.Lane(i),
		Material: s.Material[i],
		Tint:     s.Tint.Lane(i),
		HasTint:  s.HasTint,
	}
}

// Unpack scatters the packet into scalar surfaces
func (s Surface8[M]) Unpack() [8]Surface[M] {
	var out [8]Surface[M]
	for i := range out {
		out[i] = s.Lane(i)
	}
	return out
}
