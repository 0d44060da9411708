package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-surface-resolver/pkg/core"
)

func TestIsEmissive(t *testing.T) {
	tests := []struct {
		name     string
		material any
		expected bool
	}{
		{"lambertian has no emissive concept", NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"metal has no emissive concept", NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.1), false},
		{"emissive", NewEmissive(core.NewVec3(4, 4, 4)), true},
		{"generic lambertian", FromLambertian(NewLambertian(core.NewVec3(1, 0, 0))), false},
		{"generic metal", FromMetal(NewMetal(core.NewVec3(1, 1, 1), 0)), false},
		{"generic emissive", FromEmissive(NewEmissive(core.NewVec3(1, 1, 1))), true},
		{"zero generic", Generic{}, false},
		{"plain value", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEmissive(tt.material))
		})
	}
}

func TestGeneric_Delegation(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	in := core.NewVec3(0, 0, -1)
	out := core.NewVec3(0, 0, 1)

	albedo := core.NewVec3(0.6, 0.3, 0.9)
	lambertian := NewLambertian(albedo)
	g := FromLambertian(lambertian)

	assert.Equal(t, KindLambertian, g.Kind())
	assert.Equal(t, lambertian.EvaluateBRDF(in, out, normal), g.EvaluateBRDF(in, out, normal))
	assert.Equal(t, core.Vec3{}, g.Emit())

	e := FromEmissive(NewEmissive(core.NewVec3(2, 3, 4)))
	assert.Equal(t, KindEmissive, e.Kind())
	assert.Equal(t, core.NewVec3(2, 3, 4), e.Emit())
	assert.Equal(t, core.Vec3{}, e.EvaluateBRDF(in, out, normal))

	assert.Equal(t, "metal", KindMetal.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestLambertian_EvaluateBRDF(t *testing.T) {
	l := NewLambertian(core.NewVec3(1, 0.5, 0))
	normal := core.NewVec3(0, 1, 0)

	above := l.EvaluateBRDF(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), normal)
	assert.InDelta(t, 1/math.Pi, above.X, 1e-12)
	assert.InDelta(t, 0.5/math.Pi, above.Y, 1e-12)

	below := l.EvaluateBRDF(core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0), normal)
	assert.Equal(t, core.Vec3{}, below)
}

func TestMetal_EvaluateBRDF(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	in := core.NewVec3(-1, 0, 1).Normalize() // toward the light
	mirror := core.NewVec3(1, 0, 1).Normalize()

	sharp := NewMetal(core.NewVec3(1, 1, 1), 0)
	rough := NewMetal(core.NewVec3(1, 1, 1), 5) // clamped to 1
	assert.Equal(t, 1.0, rough.Fuzz)

	// Both peak in the mirror direction; the sharp lobe is much higher there
	peakSharp := sharp.EvaluateBRDF(in, mirror, normal)
	peakRough := rough.EvaluateBRDF(in, mirror, normal)
	assert.Greater(t, peakSharp.X, peakRough.X)

	off := sharp.EvaluateBRDF(in, core.NewVec3(-1, 0, 1).Normalize(), normal)
	assert.Less(t, off.X, peakSharp.X)
}

func TestMetal_PeakAtNormalIncidence(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	m := NewMetal(core.NewVec3(1, 1, 1), 0)

	// Light and viewer both straight above: the mirror lobe peaks at (n+2)/2π
	peak := m.EvaluateBRDF(normal, normal, normal)
	assert.InDelta(t, 258/(2*math.Pi), peak.X, 1e-9)
	assert.Equal(t, peak.X, peak.Z)

	// Light below the surface reflects away from the viewer
	assert.Equal(t, core.Vec3{}, m.EvaluateBRDF(normal.Negate(), normal, normal))

	g := FromMetal(m)
	assert.Equal(t, peak, g.EvaluateBRDF(normal, normal, normal))
}

func TestGeneric_Lambertian(t *testing.T) {
	tests := []struct {
		name     string
		generic  Generic
		expected core.Vec3
	}{
		{"lambertian", FromLambertian(NewLambertian(core.NewVec3(0.2, 0.4, 0.6))), core.NewVec3(0.2, 0.4, 0.6)},
		{"metal", FromMetal(NewMetal(core.NewVec3(0.9, 0.8, 0.7), 0.3)), core.NewVec3(0.9, 0.8, 0.7)},
		{"emissive clamps", FromEmissive(NewEmissive(core.NewVec3(4, 0.5, 0))), core.NewVec3(1, 0.5, 0)},
		{"zero", Generic{}, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.generic.Lambertian()
			assert.Equal(t, tt.expected, l.Albedo)
			assert.False(t, IsEmissive(l))
		})
	}
}
