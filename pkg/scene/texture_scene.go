package scene

import (
	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/lights"
	"github.com/df07/go-surface-resolver/pkg/loaders"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/renderer"
)

// quad returns a two-triangle mesh spanning corner, corner+u, corner+u+v
// and corner+v, facing u×v, with texture coordinates over the unit square
func quad(corner, u, v core.Vec3) *loaders.MeshData {
	n := u.Cross(v).Normalize()
	return &loaders.MeshData{
		Positions: []core.Vec3{corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)},
		Indices:   []int{0, 1, 2, 0, 2, 3},
		Normals:   []core.Vec3{n, n, n, n},
		TexCoords: []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}
}

// NewTextureScene builds a textured floor and back wall: a checkerboard on
// the floor and the UV debug texture on the wall
func NewTextureScene(opts Options) (*Description, error) {
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	)
	uvDebug := material.NewUVDebugTexture(256, 256)

	b := newTriangleBuilder(opts)
	floor := quad(core.NewVec3(-3, 0, 3), core.NewVec3(6, 0, 0), core.NewVec3(0, 0, -6))
	if _, err := b.add(floor, material.FromLambertian(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))), checkerboard); err != nil {
		return nil, err
	}
	wall := quad(core.NewVec3(-3, 0, -3), core.NewVec3(6, 0, 0), core.NewVec3(0, 4, 0))
	if _, err := b.add(wall, material.FromMetal(material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.6)), uvDebug); err != nil {
		return nil, err
	}

	return &Description{
		Name: "textures",
		Camera: renderer.CameraConfig{
			Center:      core.NewVec3(0, 2, 6),
			LookAt:      core.NewVec3(0, 1, -1),
			Up:          core.NewVec3(0, 1, 0),
			AspectRatio: 16.0 / 9.0,
			VFov:        50.0,
		},
		Params:     b.bundle(),
		Light:      lights.NewPointLight(core.NewVec3(0, 3.5, 2), core.NewVec3(1, 1, 1), 3),
		Background: core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		Ambient:    core.NewVec3(0.1, 0.1, 0.1),
	}, nil
}
