package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
)

// ErrUnsupportedFormat is returned for files no loader understands
var ErrUnsupportedFormat = errors.New("unsupported file format")

// MeshData is an indexed triangle mesh in the attribute-array layout the
// surface resolver consumes. Normals, Colors and TexCoords are per-vertex
// and empty when the source file has none.
type MeshData struct {
	Positions []core.Vec3
	Indices   []int // 3 per triangle
	Normals   []core.Vec3
	Colors    []core.Vec3
	TexCoords []core.Vec2
}

// TriangleCount returns the number of triangles
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangles builds the mesh's triangles. Triangle i gets PrimID
// firstPrim+i, every triangle shares geomID and vertex indices are offset
// by firstVertex so several meshes can share one attribute array.
func (m *MeshData) Triangles(firstVertex, firstPrim, geomID int) []geometry.Triangle {
	tris := make([]geometry.Triangle, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		tris = append(tris, geometry.NewTriangle(
			m.Positions[i0], m.Positions[i1], m.Positions[i2],
			[3]int{firstVertex + i0, firstVertex + i1, firstVertex + i2}, firstPrim+i, geomID,
		))
	}
	return tris
}

// FaceNormals returns one geometric normal per triangle
func (m *MeshData) FaceNormals() []core.Vec3 {
	normals := make([]core.Vec3, m.TriangleCount())
	for i := range normals {
		v0 := m.Positions[m.Indices[3*i]]
		v1 := m.Positions[m.Indices[3*i+1]]
		v2 := m.Positions[m.Indices[3*i+2]]
		normals[i] = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	}
	return normals
}

// EnsureNormals fills Normals with area-weighted vertex normals when the
// mesh has none
func (m *MeshData) EnsureNormals() {
	if len(m.Normals) == len(m.Positions) {
		return
	}
	normals := make([]core.Vec3, len(m.Positions))
	for i := 0; i < m.TriangleCount(); i++ {
		i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		v0 := m.Positions[i0]
		// unnormalized cross product weights by area
		n := m.Positions[i1].Subtract(v0).Cross(m.Positions[i2].Subtract(v0))
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// EnsureTexCoords fills TexCoords with a planar projection onto the XY
// face of the mesh bounds when the mesh has none
func (m *MeshData) EnsureTexCoords() {
	if len(m.TexCoords) == len(m.Positions) {
		return
	}
	bounds := core.NewAABBFromPoints(m.Positions...)
	size := bounds.Size()
	texCoords := make([]core.Vec2, len(m.Positions))
	for i, p := range m.Positions {
		texCoords[i] = core.NewVec2(ratio(p.X-bounds.Min.X, size.X), ratio(p.Y-bounds.Min.Y, size.Y))
	}
	m.TexCoords = texCoords
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Validate checks that every index and attribute array is consistent
func (m *MeshData) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Positions) {
			return fmt.Errorf("index %d out of range at %d (vertices: %d)", idx, i, len(m.Positions))
		}
	}
	for name, n := range map[string]int{"normals": len(m.Normals), "colors": len(m.Colors), "texture coordinates": len(m.TexCoords)} {
		if n != 0 && n != len(m.Positions) {
			return fmt.Errorf("%s: got %d, want %d", name, n, len(m.Positions))
		}
	}
	return nil
}

// LoadMesh loads a mesh, picking the loader from the file extension
func LoadMesh(filename string) (*MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".ply":
		return LoadPLY(filename)
	case ".obj":
		return LoadOBJ(filename)
	case ".stl":
		return LoadSTL(filename)
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}
}
