package scene

import (
	"math"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/lights"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/renderer"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// Sphere grid layout
const (
	gridSize     = 4
	gridSpacing  = 1.5
	sphereRadius = 0.45
)

// NewSphereGridScene builds a mixed-kind scene: a triangle backdrop, a
// disc floor, a grid of spheres colored around the OKLCH hue wheel and one
// emissive sphere. Every primitive is its own geometry, so GeomID equals
// PrimID and per-geometry colors vary per primitive.
func NewSphereGridScene(opts Options) *Description {
	var (
		prims     []geometry.Primitive
		materials []material.Generic
		textures  []material.Texture
		colors    []core.Vec3
	)
	add := func(p geometry.Primitive, m material.Generic, tex material.Texture, color core.Vec3) {
		prims = append(prims, p)
		materials = append(materials, m)
		if opts.Texture != nil {
			tex = opts.Texture
		}
		textures = append(textures, tex)
		colors = append(colors, color)
	}

	// Backdrop quad split in two triangles; vertex indices address the
	// per-vertex normal and texture coordinate arrays below
	backdrop := [4]core.Vec3{
		core.NewVec3(-4, 0, -6),
		core.NewVec3(4, 0, -6),
		core.NewVec3(4, 4, -6),
		core.NewVec3(-4, 4, -6),
	}
	backdropMat := material.FromLambertian(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.75)))
	uvDebug := material.NewUVDebugTexture(128, 128)
	add(geometry.FromTriangle(geometry.NewTriangle(backdrop[0], backdrop[1], backdrop[2], [3]int{0, 1, 2}, len(prims), len(prims))),
		backdropMat, uvDebug, core.NewVec3(1, 0.9, 0.8))
	add(geometry.FromTriangle(geometry.NewTriangle(backdrop[0], backdrop[2], backdrop[3], [3]int{0, 2, 3}, len(prims), len(prims))),
		backdropMat, uvDebug, core.NewVec3(0.8, 0.9, 1))

	checkerboard := material.NewCheckerboardTexture(256, 256, 16,
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.3, 0.3, 0.3),
	)
	add(geometry.FromDisc(geometry.NewDisc(core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 0), 6, len(prims), len(prims))),
		material.FromLambertian(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))), checkerboard, core.NewVec3(1, 1, 1))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			center := core.NewVec3(
				(float64(i)-float64(gridSize-1)/2)*gridSpacing,
				sphereRadius,
				-float64(j)*gridSpacing,
			)

			// Hue walks the grid; lightness wobbles a little
			hue := float64(i*gridSize+j) / float64(gridSize*gridSize) * 360.0
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, 0.15, hue)

			m := material.FromLambertian(material.NewLambertian(color))
			if (i+j)%2 == 1 {
				m = material.FromMetal(material.NewMetal(color, 0.05+0.1*float64((i+j)%3)/2.0))
			}
			add(geometry.FromSphere(geometry.NewSphere(center, sphereRadius, len(prims), len(prims))), m, nil, color)
		}
	}

	add(geometry.FromSphere(geometry.NewSphere(core.NewVec3(0, 3, -4.5), 0.5, len(prims), len(prims))),
		material.FromEmissive(material.NewEmissive(core.NewVec3(4, 3.6, 3))), nil, core.NewVec3(1, 1, 1))

	params := surface.Params[material.Generic]{
		Primitives:    prims,
		Materials:     materials,
		NormalBinding: opts.NormalBinding,
		ColorBinding:  opts.ColorBinding,
	}

	backNormal := core.NewVec3(0, 0, 1)
	switch opts.NormalBinding {
	case surface.NormalsPerVertex:
		params.Normals = []core.Vec3{backNormal, backNormal, backNormal, backNormal}
	case surface.NormalsPerFace:
		// Analytic kinds ignore the array; only the triangles' entries matter
		params.Normals = make([]core.Vec3, len(prims))
		params.Normals[0], params.Normals[1] = backNormal, backNormal
	}

	if hasTexture(textures) {
		params.Textures = textures
		params.TexCoords = []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	}
	if opts.Colors {
		params.Colors = colors
	}

	return &Description{
		Name: "spheregrid",
		Camera: renderer.CameraConfig{
			Center:      core.NewVec3(0, 4, 6),
			LookAt:      core.NewVec3(0, 0.8, -2.5),
			Up:          core.NewVec3(0, 1, 0),
			AspectRatio: 16.0 / 9.0,
			VFov:        45.0,
		},
		Params:     params,
		Light:      lights.NewPointLight(core.NewVec3(3, 6, 3), core.NewVec3(1, 0.95, 0.9), 3.5),
		Background: core.NewVec3(0.5, 0.7, 1.0),
		Ambient:    core.NewVec3(0.08, 0.08, 0.1),
	}
}

func hasTexture(textures []material.Texture) bool {
	for _, t := range textures {
		if t != nil {
			return true
		}
	}
	return false
}
