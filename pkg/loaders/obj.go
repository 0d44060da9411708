package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// LoadOBJ loads a Wavefront OBJ file. Faces are triangulated by the
// parser and every triangle gets its own three vertices.
func LoadOBJ(filename string) (*MeshData, error) {
	mesh, err := fauxgl.LoadOBJ(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file: %w", err)
	}
	return fromFauxMesh(mesh), nil
}

// LoadSTL loads a binary or ASCII STL file
func LoadSTL(filename string) (*MeshData, error) {
	mesh, err := fauxgl.LoadSTL(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load STL file: %w", err)
	}
	return fromFauxMesh(mesh), nil
}

// LoadNormalizedMesh loads an OBJ, PLY, STL or 3DS file, fits it into the
// [-1,1] cube and smooths its normals
func LoadNormalizedMesh(filename string) (*MeshData, error) {
	mesh, err := fauxgl.LoadMesh(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	mesh.BiUnitCube()
	mesh.SmoothNormals()
	return fromFauxMesh(mesh), nil
}

func fromFauxMesh(mesh *fauxgl.Mesh) *MeshData {
	n := len(mesh.Triangles) * 3
	data := &MeshData{
		Positions: make([]core.Vec3, 0, n),
		Indices:   make([]int, 0, n),
	}

	var hasNormals, hasTexCoords, hasColors bool
	for _, t := range mesh.Triangles {
		for _, v := range []fauxgl.Vertex{t.V1, t.V2, t.V3} {
			hasNormals = hasNormals || v.Normal != (fauxgl.Vector{})
			hasTexCoords = hasTexCoords || v.Texture != (fauxgl.Vector{})
			hasColors = hasColors || v.Color != (fauxgl.Color{})
		}
	}

	for _, t := range mesh.Triangles {
		for _, v := range []fauxgl.Vertex{t.V1, t.V2, t.V3} {
			data.Indices = append(data.Indices, len(data.Positions))
			data.Positions = append(data.Positions, fromVector(v.Position))
			if hasNormals {
				data.Normals = append(data.Normals, fromVector(v.Normal))
			}
			if hasTexCoords {
				data.TexCoords = append(data.TexCoords, core.NewVec2(v.Texture.X, v.Texture.Y))
			}
			if hasColors {
				data.Colors = append(data.Colors, core.NewVec3(v.Color.R, v.Color.G, v.Color.B))
			}
		}
	}
	return data
}

func fromVector(v fauxgl.Vector) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
