package surface

import (
	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/material"
)

var white = core.NewVec3(1, 1, 1)

// sampleTexture samples the hit geometry's texture. Unbound textures (nil
// or zero sized) tint white.
func sampleTexture(textures []material.Texture, geomID int, uv core.Vec2) core.Vec3 {
	tex := textures[geomID]
	if tex == nil || tex.Width() <= 0 || tex.Height() <= 0 {
		return white
	}
	return tex.Sample(uv)
}

func resolveColor[M any](p *Params[M], hr core.HitRecord) core.Vec3 {
	if p.mixed() {
		return primitiveColor(p.Primitives[hr.PrimID], p.Colors, hr, p.ColorBinding)
	}
	return triangleColor(p.Triangles[hr.PrimID], p.Colors, hr, p.ColorBinding)
}

func triangleColor(tri geometry.Triangle, colors []core.Vec3, hr core.HitRecord, binding ColorBinding) core.Vec3 {
	switch binding {
	case ColorsPerFace:
		return colors[hr.PrimID]
	case ColorsPerGeometry:
		return colors[hr.GeomID]
	default:
		i := tri.Indices
		return core.Interpolate(colors[i[0]], colors[i[1]], colors[i[2]], hr.U, hr.V)
	}
}

// textureTint is the tint of a texture-only bundle
func textureTint[M any](p *Params[M], hr core.HitRecord) core.Vec3 {
	return sampleTexture(p.Textures, hr.GeomID, resolveTexCoord(p, hr))
}

// colorTextureTint modulates the vertex color by the texture sample
func colorTextureTint[M any](p *Params[M], hr core.HitRecord) core.Vec3 {
	return resolveColor(p, hr).MultiplyVec(textureTint(p, hr))
}
