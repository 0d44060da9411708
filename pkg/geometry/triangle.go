package geometry

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Triangle is an indexed triangle. It stores its first vertex and two edges
// for intersection, and the indices of its three vertices into the
// per-vertex attribute arrays (normals, texture coordinates, colors).
type Triangle struct {
	V0      core.Vec3 // First vertex
	E1, E2  core.Vec3 // V1-V0 and V2-V0
	Indices [3]int    // Vertex indices
	PrimID  int
	GeomID  int
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, indices [3]int, primID, geomID int) Triangle {
	return Triangle{
		V0:      v0,
		E1:      v1.Subtract(v0),
		E2:      v2.Subtract(v0),
		Indices: indices,
		PrimID:  primID,
		GeomID:  geomID,
	}
}

// Vertices returns the three corner positions
func (t Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.V0, t.V0.Add(t.E1), t.V0.Add(t.E2)
}

// GeometricNormal returns the unit normal of the triangle's plane
func (t Triangle) GeometricNormal() core.Vec3 {
	return t.E1.Cross(t.E2).Normalize()
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// U and V of the hit record are the barycentric weights of vertices 1 and 2.
func (t Triangle) Intersect(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	// Calculate determinant
	h := ray.Direction.Cross(t.E2)
	a := t.E1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(t.E1)
	v := f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	tParam := f * t.E2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		Hit:    true,
		PrimID: t.PrimID,
		GeomID: t.GeomID,
		T:      tParam,
		U:      u,
		V:      v,
		Point:  ray.At(tParam),
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t Triangle) BoundingBox() core.AABB {
	v0, v1, v2 := t.Vertices()
	return core.NewAABBFromPoints(v0, v1, v2)
}
