package core

// HitRecord is the result of intersecting a single ray with the scene.
//
// PrimID indexes the primitive collection, GeomID indexes per-object arrays
// (materials, textures, per-geometry colors). U and V are the barycentric
// weights of vertices 1 and 2 for triangles and parametric coordinates for
// analytic primitives. When Hit is false the other fields are unspecified.
type HitRecord struct {
	Hit    bool
	PrimID int
	GeomID int
	T      float64
	U, V   float64
	Point  Vec3
}
