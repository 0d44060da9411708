package surface

import (
	"errors"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/material"
)

var (
	// ErrColorsWithoutTextures is returned for bundles with vertex colors but no textures
	ErrColorsWithoutTextures = errors.New("surface: vertex colors require textures")
	// ErrNoPrimitives is returned when neither Triangles nor Primitives is set
	ErrNoPrimitives = errors.New("surface: no primitives")
	// ErrAmbiguousPrimitives is returned when both Triangles and Primitives are set
	ErrAmbiguousPrimitives = errors.New("surface: both triangles and primitives set")
	// ErrMissingMaterials is returned for bundles without a material array
	ErrMissingMaterials = errors.New("surface: no materials")
	// ErrMissingNormals is returned when the normal binding needs a normal array that is empty
	ErrMissingNormals = errors.New("surface: normal binding requires normals")
	// ErrMissingTexCoords is returned when textured triangles have no texture coordinates
	ErrMissingTexCoords = errors.New("surface: textured triangles require texture coordinates")
)

// Params is the read-only attribute bundle a scene binds for resolution.
//
// Exactly one of Triangles or Primitives is set. Triangles is the
// homogeneous layout; Primitives mixes kinds and routes normal lookup
// through the primitive visitor. PrimID indexes the primitive array,
// Normals (per-face) and Colors (per-face). GeomID indexes Materials,
// Textures and Colors (per-geometry). Vertex indices of a triangle index
// Normals, TexCoords and Colors under the per-vertex bindings.
//
// M is the material representation, e.g. material.Lambertian for simple
// scenes or material.Generic when kinds are mixed.
type Params[M any] struct {
	Triangles  []geometry.Triangle
	Primitives []geometry.Primitive

	Normals   []core.Vec3
	Materials []M
	TexCoords []core.Vec2
	Textures  []material.Texture
	Colors    []core.Vec3

	NormalBinding NormalBinding
	ColorBinding  ColorBinding
}

// Layout reports which primitive array the bundle uses
func (p *Params[M]) Layout() string {
	if p.mixed() {
		return "mixed"
	}
	return "triangles"
}

// Validate checks the bundle's configuration. It does not range-check
// individual indices.
func (p *Params[M]) Validate() error {
	if _, err := Classify(p); err != nil {
		return err
	}
	switch {
	case len(p.Triangles) > 0 && len(p.Primitives) > 0:
		return ErrAmbiguousPrimitives
	case len(p.Triangles) == 0 && len(p.Primitives) == 0:
		return ErrNoPrimitives
	}
	if len(p.Materials) == 0 {
		return ErrMissingMaterials
	}
	if p.NormalBinding != NormalsPrecomputed && len(p.Normals) == 0 && p.hasTriangles() {
		return ErrMissingNormals
	}
	if len(p.Textures) > 0 && len(p.TexCoords) == 0 && p.hasTriangles() {
		return ErrMissingTexCoords
	}
	return nil
}

// mixed selects the primitive visitor. An empty Primitives slice counts
// as unset so Validate and the resolvers agree on the layout.
func (p *Params[M]) mixed() bool {
	return len(p.Primitives) > 0
}

func (p *Params[M]) hasTriangles() bool {
	if len(p.Triangles) > 0 {
		return true
	}
	for _, prim := range p.Primitives {
		if prim.Kind() == geometry.KindTriangle {
			return true
		}
	}
	return false
}
