package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/lights"
	"github.com/df07/go-surface-resolver/pkg/loaders"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/renderer"
)

// ErrEmptyMesh is returned for meshes without triangles
var ErrEmptyMesh = errors.New("mesh has no triangles")

// NewMeshScene places mesh on a floor quad and frames the camera around
// its bounds. Both geometries use opts.Texture when set and are untextured
// otherwise.
func NewMeshScene(name string, mesh *loaders.MeshData, opts Options) (*Description, error) {
	if mesh.TriangleCount() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}

	bounds := core.NewAABBFromPoints(mesh.Positions...)
	center := bounds.Center()
	radius := bounds.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}

	b := newTriangleBuilder(opts)
	if _, err := b.add(mesh, material.FromLambertian(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))), nil); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	size := 6 * radius
	floor := quad(
		core.NewVec3(center.X-size/2, bounds.Min.Y, center.Z+size/2),
		core.NewVec3(size, 0, 0),
		core.NewVec3(0, 0, -size),
	)
	if _, err := b.add(floor, material.FromLambertian(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))), nil); err != nil {
		return nil, err
	}

	return &Description{
		Name: name,
		Camera: renderer.CameraConfig{
			Center:      center.Add(core.NewVec3(0, 0.6*radius, 2.8*radius)),
			LookAt:      center,
			Up:          core.NewVec3(0, 1, 0),
			AspectRatio: 16.0 / 9.0,
			VFov:        40.0,
		},
		Params:     b.bundle(),
		Light:      lights.NewPointLight(center.Add(core.NewVec3(2*radius, 3*radius, 2*radius)), core.NewVec3(1, 1, 1), 3),
		Background: core.NewVec3(0.5, 0.7, 1.0),
		Ambient:    core.NewVec3(0.1, 0.1, 0.1),
	}, nil
}
