package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

func mixedParams() Params[material.Generic] {
	return Params[material.Generic]{
		Primitives: []geometry.Primitive{
			geometry.FromTriangle(geometry.NewTriangle(
				core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3),
				[3]int{0, 1, 2}, 0, 0,
			)),
			geometry.FromSphere(geometry.NewSphere(core.NewVec3(3, 0, -3), 1, 1, 1)),
			geometry.FromDisc(geometry.NewDisc(core.NewVec3(-3, 0, -3), core.NewVec3(0, 0, 2), 1, 2, 2)),
		},
		Normals: []core.Vec3{
			core.NewVec3(0, 0, 1),
			core.NewVec3(0, 1, 0),
			core.NewVec3(1, 0, 0),
		},
		Materials: []material.Generic{
			material.FromLambertian(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
			material.FromMetal(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.1)),
			material.FromEmissive(material.NewEmissive(core.NewVec3(4, 4, 4))),
		},
		TexCoords: []core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1)},
	}
}

func TestVisitor_AnalyticNormals(t *testing.T) {
	p := mixedParams()
	r, err := NewResolver(p)
	require.NoError(t, err)

	sphereHit := core.HitRecord{Hit: true, PrimID: 1, GeomID: 1, T: 2, Point: core.NewVec3(3, 0, -2)}
	assert.Equal(t, core.NewVec3(0, 0, 1), r.Resolve(sphereHit).Normal)

	discHit := core.HitRecord{Hit: true, PrimID: 2, GeomID: 2, T: 3, U: 0.5, V: 0.5, Point: core.NewVec3(-3, 0, -3)}
	assert.Equal(t, core.NewVec3(0, 0, 1), r.Resolve(discHit).Normal)

	// triangles still honor the binding
	triHit := core.HitRecord{Hit: true, PrimID: 0, GeomID: 0, U: 1, V: 0}
	assert.Equal(t, p.Normals[1], r.Resolve(triHit).Normal)

	p.NormalBinding = NormalsPerFace
	r, err = NewResolver(p)
	require.NoError(t, err)
	assert.Equal(t, p.Normals[0], r.Resolve(triHit).Normal)
	assert.Equal(t, core.NewVec3(0, 0, 1), r.Resolve(sphereHit).Normal)
}

func TestVisitor_MatchesTriangleLayout(t *testing.T) {
	mixed := mixedParams()
	tri := Params[material.Generic]{
		Triangles: []geometry.Triangle{mixed.Primitives[0].Triangle()},
		Normals:   mixed.Normals,
		Materials: mixed.Materials,
		TexCoords: mixed.TexCoords,
	}

	hr := core.HitRecord{Hit: true, PrimID: 0, GeomID: 0, U: 0.2, V: 0.3}
	for _, binding := range []NormalBinding{NormalsPerVertex, NormalsPerFace, NormalsPrecomputed} {
		mixed.NormalBinding = binding
		tri.NormalBinding = binding
		assert.Equal(t, Resolve(hr, &tri), Resolve(hr, &mixed), binding.String())
	}
}

func TestVisitor_AnalyticTexCoordsAndColors(t *testing.T) {
	p := mixedParams()
	checker := material.NewImageTexture(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	})
	p.Textures = []material.Texture{nil, checker, checker}
	p.Colors = []core.Vec3{white, core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 0, 1)}
	r, err := NewResolver(p)
	require.NoError(t, err)

	// (u,v) = (0.75, 0.75) is the top right texel, row 0 column 1
	sphereHit := core.HitRecord{Hit: true, PrimID: 1, GeomID: 1, U: 0.75, V: 0.75, Point: core.NewVec3(3, 1, -3)}
	assert.Equal(t, core.NewVec3(0, 0.5, 0), r.Resolve(sphereHit).Tint)

	// bottom left texel, row 1 column 0; per-vertex colors fall back to per-face for discs
	discHit := core.HitRecord{Hit: true, PrimID: 2, GeomID: 2, U: 0.25, V: 0.25, Point: core.NewVec3(-3, 0, -3)}
	assert.Equal(t, core.NewVec3(0, 0, 1), r.Resolve(discHit).Tint)

	p.ColorBinding = ColorsPerGeometry
	r, err = NewResolver(p)
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(0, 0.5, 0), r.Resolve(sphereHit).Tint)
}

func TestVisitor_ValidationSkipsTriangleOnlyArrays(t *testing.T) {
	p := Params[material.Generic]{
		Primitives: []geometry.Primitive{
			geometry.FromSphere(geometry.NewSphere(core.Vec3{}, 1, 0, 0)),
		},
		Materials: []material.Generic{{}},
		Textures:  []material.Texture{material.NewSolidTexture(white)},
	}
	r, err := NewResolver(p)
	require.NoError(t, err)
	assert.Equal(t, "mixed", p.Layout())

	s := r.Resolve(core.HitRecord{Hit: true, Point: core.NewVec3(0, 1, 0), U: 0.5, V: 1})
	assert.Equal(t, core.NewVec3(0, 1, 0), s.Normal)
	assert.Equal(t, white, s.Tint)
}

func TestEmissive(t *testing.T) {
	p := mixedParams()
	r, err := NewResolver(p)
	require.NoError(t, err)

	hits := [4]core.HitRecord{
		{Hit: true, PrimID: 0, GeomID: 0},
		{Hit: true, PrimID: 1, GeomID: 1, Point: core.NewVec3(3, 0, -2)},
		{Hit: true, PrimID: 2, GeomID: 2, Point: core.NewVec3(-3, 0, -3)},
		{},
	}
	assert.False(t, HasEmissiveMaterial(r.Resolve(hits[0])))
	assert.False(t, HasEmissiveMaterial(r.Resolve(hits[1])))
	assert.True(t, HasEmissiveMaterial(r.Resolve(hits[2])))
	assert.False(t, HasEmissiveMaterial(r.Resolve(hits[3])))

	mask := HasEmissiveMaterial4(r.Resolve4(simd.PackHitRecords4(hits)))
	assert.Equal(t, simd.Mask4{false, false, true, false}, mask)

	var hits8 [8]core.HitRecord
	hits8[5] = hits[2]
	mask8 := HasEmissiveMaterial8(r.Resolve8(simd.PackHitRecords8(hits8)))
	assert.Equal(t, 1, mask8.Count())
	assert.True(t, mask8[5])
}

func TestEmissive_SimpleMaterialsNeverEmit(t *testing.T) {
	r, err := NewResolver(quadParams())
	require.NoError(t, err)

	assert.False(t, HasEmissiveMaterial(r.Resolve(hitAt(0, 0, 0, 0))))
	mask := HasEmissiveMaterial4(r.Resolve4(simd.PackHitRecords4([4]core.HitRecord{
		hitAt(0, 0, 0, 0), hitAt(1, 1, 0, 0), hitAt(0, 0, 0.5, 0.5), {},
	})))
	assert.False(t, mask.Any())
}
