package scene

import (
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/loaders"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// triangleBuilder merges meshes into one triangle bundle. Every mesh
// becomes one geometry with its own material and texture; vertex
// attributes are concatenated and triangle indices offset to match.
type triangleBuilder struct {
	opts   Options
	params surface.Params[material.Generic]

	textured      bool
	vertexNormals []core.Vec3
	faceNormals   []core.Vec3
	texCoords     []core.Vec2
	vertexColors  []core.Vec3
	faceColors    []core.Vec3
	geomColors    []core.Vec3
}

func newTriangleBuilder(opts Options) *triangleBuilder {
	return &triangleBuilder{opts: opts}
}

// add appends mesh as a new geometry and returns its GeomID
func (b *triangleBuilder) add(mesh *loaders.MeshData, mat material.Generic, tex material.Texture) (int, error) {
	if err := mesh.Validate(); err != nil {
		return 0, fmt.Errorf("invalid mesh: %w", err)
	}
	mesh.EnsureNormals()
	mesh.EnsureTexCoords()

	if b.opts.Texture != nil {
		tex = b.opts.Texture
	}
	if tex != nil {
		b.textured = true
	}

	geomID := len(b.params.Materials)
	firstVertex := len(b.vertexNormals)
	b.params.Triangles = append(b.params.Triangles, mesh.Triangles(firstVertex, len(b.params.Triangles), geomID)...)
	b.params.Materials = append(b.params.Materials, mat)
	b.params.Textures = append(b.params.Textures, tex)

	b.vertexNormals = append(b.vertexNormals, mesh.Normals...)
	b.faceNormals = append(b.faceNormals, mesh.FaceNormals()...)
	b.texCoords = append(b.texCoords, mesh.TexCoords...)

	colors := mesh.Colors
	if len(colors) == 0 {
		colors = make([]core.Vec3, len(mesh.Normals))
		for i, n := range mesh.Normals {
			colors[i] = normalColor(n)
		}
	}
	b.vertexColors = append(b.vertexColors, colors...)

	var sum core.Vec3
	for i := 0; i < mesh.TriangleCount(); i++ {
		c := colors[mesh.Indices[3*i]].
			Add(colors[mesh.Indices[3*i+1]]).
			Add(colors[mesh.Indices[3*i+2]]).
			Multiply(1.0 / 3.0)
		b.faceColors = append(b.faceColors, c)
		sum = sum.Add(c)
	}
	if n := mesh.TriangleCount(); n > 0 {
		sum = sum.Multiply(1 / float64(n))
	}
	b.geomColors = append(b.geomColors, sum)

	return geomID, nil
}

// bundle binds the accumulated attributes according to the options
func (b *triangleBuilder) bundle() surface.Params[material.Generic] {
	p := b.params
	p.NormalBinding = b.opts.NormalBinding
	p.ColorBinding = b.opts.ColorBinding

	switch b.opts.NormalBinding {
	case surface.NormalsPerFace:
		p.Normals = b.faceNormals
	case surface.NormalsPrecomputed:
		p.Normals = nil
	default:
		p.Normals = b.vertexNormals
	}

	if b.textured {
		p.TexCoords = b.texCoords
	} else {
		p.Textures = nil
	}

	if b.opts.Colors {
		switch b.opts.ColorBinding {
		case surface.ColorsPerFace:
			p.Colors = b.faceColors
		case surface.ColorsPerGeometry:
			p.Colors = b.geomColors
		default:
			p.Colors = b.vertexColors
		}
	}
	return p
}

// normalColor maps a unit normal into [0,1]³
func normalColor(n core.Vec3) core.Vec3 {
	return n.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
