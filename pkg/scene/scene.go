package scene

import (
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/lights"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/renderer"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// Description is a scene before a material representation has been picked.
// Materials are authored as material.Generic; Build converts them once for
// the representation the caller renders with.
type Description struct {
	Name       string
	Camera     renderer.CameraConfig
	Params     surface.Params[material.Generic]
	Light      lights.Light
	Background core.Vec3
	Ambient    core.Vec3
}

// Options selects the attribute bindings a builder fills in
type Options struct {
	NormalBinding surface.NormalBinding
	ColorBinding  surface.ColorBinding
	Colors        bool             // bind vertex colors
	Texture       material.Texture // overrides the scene's own textures when set
	NormalizeMesh bool             // fit mesh files into the [-1,1] cube and smooth their normals
}

// DefaultOptions binds per-vertex normals and no colors
func DefaultOptions() Options {
	return Options{
		NormalBinding: surface.NormalsPerVertex,
		ColorBinding:  surface.ColorsPerVertex,
	}
}

// Simple maps every material to its diffuse stand-in
func Simple(g material.Generic) material.Lambertian {
	return g.Lambertian()
}

// Generic keeps the closed variant as is
func Generic(g material.Generic) material.Generic {
	return g
}

// Build converts the description's materials with convert, validates the
// bundle through surface.NewResolver and builds the BVH over its primitives.
func Build[M material.Material](desc *Description, convert func(material.Generic) M, logger core.Logger) (*renderer.Scene[M], error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	params := ConvertParams(desc.Params, convert)
	resolver, err := surface.NewResolver(params, surface.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", desc.Name, err)
	}

	var bvh *geometry.BVH
	if len(params.Primitives) > 0 {
		bvh = geometry.NewBVH(params.Primitives)
	} else {
		bvh = geometry.NewBVH(params.Triangles)
	}
	stats := bvh.Stats()
	logger.Printf("Scene %q: %d materials, %s layout, BVH %d nodes (%d leaves, depth %d)\n",
		desc.Name, len(params.Materials), params.Layout(), stats.Nodes, stats.Leaves, stats.MaxDepth)

	return &renderer.Scene[M]{
		Camera:     renderer.NewCamera(desc.Camera),
		BVH:        bvh,
		Resolver:   resolver,
		Light:      desc.Light,
		Background: desc.Background,
		Ambient:    desc.Ambient,
	}, nil
}

// ConvertParams copies p with every material passed through convert. The
// attribute arrays are shared, not copied.
func ConvertParams[M any](p surface.Params[material.Generic], convert func(material.Generic) M) surface.Params[M] {
	materials := make([]M, len(p.Materials))
	for i, g := range p.Materials {
		materials[i] = convert(g)
	}
	return surface.Params[M]{
		Triangles:     p.Triangles,
		Primitives:    p.Primitives,
		Normals:       p.Normals,
		Materials:     materials,
		TexCoords:     p.TexCoords,
		Textures:      p.Textures,
		Colors:        p.Colors,
		NormalBinding: p.NormalBinding,
		ColorBinding:  p.ColorBinding,
	}
}
