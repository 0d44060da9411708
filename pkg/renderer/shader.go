package renderer

import (
	"fmt"
	"image/color"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// Mode selects what the preview shows per pixel
type Mode int

const (
	// ModeShaded lights the surface with the scene light and its material
	ModeShaded Mode = iota
	// ModeNormals maps the shading normal to color
	ModeNormals
	// ModeTint shows the resolved tint, white for untinted bundles
	ModeTint
)

func (m Mode) String() string {
	switch m {
	case ModeShaded:
		return "shaded"
	case ModeNormals:
		return "normals"
	case ModeTint:
		return "tint"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the String form of a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeShaded, ModeNormals, ModeTint} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

const shadowEpsilon = 1e-4

var white = core.NewVec3(1, 1, 1)

// shade computes the color of one primary ray. Callers pass the lane's hit
// flag; surfaces of lanes without a hit are placeholders and never read.
func (tr *TileRenderer[M]) shade(ray core.Ray, hit bool, point core.Vec3, s surface.Surface[M], emissive bool) core.Vec3 {
	if !hit {
		return tr.scene.Background
	}

	switch tr.mode {
	case ModeNormals:
		return s.Normal.Add(white).Multiply(0.5)
	case ModeTint:
		if s.HasTint {
			return s.Tint
		}
		return white
	default:
		return tr.shadeLit(ray, point, s, emissive)
	}
}

func (tr *TileRenderer[M]) shadeLit(ray core.Ray, point core.Vec3, s surface.Surface[M], emissive bool) core.Vec3 {
	if emissive {
		if e, ok := any(s.Material).(material.Emitter); ok {
			return e.Emit()
		}
	}

	tint := white
	if s.HasTint {
		tint = s.Tint
	}

	wo := ray.Direction.Negate().Normalize()
	n := s.Normal.Normalize()
	// two-sided shading
	if n.Dot(wo) < 0 {
		n = n.Negate()
	}

	result := tr.scene.Ambient.MultiplyVec(tint)
	if tr.scene.Light == nil {
		return result
	}

	ls := tr.scene.Light.Sample(point)
	cosine := n.Dot(ls.Direction)
	if cosine <= 0 || tr.occluded(point, n, ls.Direction, ls.Distance) {
		return result
	}

	brdf := s.Material.EvaluateBRDF(ls.Direction, wo, n)
	return result.Add(brdf.MultiplyVec(tint).MultiplyVec(ls.Emission).Multiply(cosine))
}

// occluded reports whether anything lies between point and the light
func (tr *TileRenderer[M]) occluded(point, normal, dir core.Vec3, distance float64) bool {
	origin := point.Add(normal.Multiply(shadowEpsilon))
	return tr.scene.BVH.ClosestHit(core.NewRay(origin, dir), shadowEpsilon, distance-shadowEpsilon).Hit
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
