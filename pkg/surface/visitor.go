package surface

import (
	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
)

// primitiveNormal visits the active member of prim. Spheres and discs have
// analytic normals; triangles honor the binding.
func primitiveNormal(prim geometry.Primitive, normals []core.Vec3, hr core.HitRecord, binding NormalBinding) core.Vec3 {
	switch prim.Kind() {
	case geometry.KindSphere:
		return prim.Sphere().Normal(hr.Point)
	case geometry.KindDisc:
		return prim.Disc().Normal
	default:
		return triangleNormal(prim.Triangle(), normals, hr, binding)
	}
}

func primitiveTexCoord(prim geometry.Primitive, texCoords []core.Vec2, hr core.HitRecord) core.Vec2 {
	if prim.Kind() == geometry.KindTriangle {
		return triangleTexCoord(prim.Triangle(), texCoords, hr)
	}
	return core.NewVec2(hr.U, hr.V)
}

// primitiveColor fetches the vertex color for a mixed-layout hit. Only
// triangles have vertices, so the per-vertex binding falls back to the
// per-face entry for everything else.
func primitiveColor(prim geometry.Primitive, colors []core.Vec3, hr core.HitRecord, binding ColorBinding) core.Vec3 {
	if prim.Kind() == geometry.KindTriangle {
		return triangleColor(prim.Triangle(), colors, hr, binding)
	}
	if binding == ColorsPerGeometry {
		return colors[hr.GeomID]
	}
	return colors[hr.PrimID]
}
