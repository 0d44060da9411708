package surface

import (
	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
)

// resolveNormal returns the shading normal for a hit. Mixed layouts go
// through the primitive visitor; the triangle layout reads the binding
// directly.
func resolveNormal[M any](p *Params[M], hr core.HitRecord) core.Vec3 {
	if p.mixed() {
		return primitiveNormal(p.Primitives[hr.PrimID], p.Normals, hr, p.NormalBinding)
	}
	return triangleNormal(p.Triangles[hr.PrimID], p.Normals, hr, p.NormalBinding)
}

func triangleNormal(tri geometry.Triangle, normals []core.Vec3, hr core.HitRecord, binding NormalBinding) core.Vec3 {
	switch binding {
	case NormalsPerFace:
		return normals[hr.PrimID]
	case NormalsPrecomputed:
		return tri.GeometricNormal()
	default:
		i := tri.Indices
		return core.Interpolate(normals[i[0]], normals[i[1]], normals[i[2]], hr.U, hr.V)
	}
}

// resolveTexCoord returns the hit's texture coordinate. Triangles
// interpolate the per-vertex array; analytic primitives already carry a
// parameterization in (U, V).
func resolveTexCoord[M any](p *Params[M], hr core.HitRecord) core.Vec2 {
	if p.mixed() {
		return primitiveTexCoord(p.Primitives[hr.PrimID], p.TexCoords, hr)
	}
	return triangleTexCoord(p.Triangles[hr.PrimID], p.TexCoords, hr)
}

func triangleTexCoord(tri geometry.Triangle, texCoords []core.Vec2, hr core.HitRecord) core.Vec2 {
	i := tri.Indices
	return core.Interpolate2(texCoords[i[0]], texCoords[i[1]], texCoords[i[2]], hr.U, hr.V)
}
