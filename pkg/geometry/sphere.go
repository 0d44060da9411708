package geometry

import (
	"math"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	PrimID int
	GeomID int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, primID, geomID int) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		PrimID: primID,
		GeomID: geomID,
	}
}

// Normal returns the outward unit normal at a point on the sphere
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// UV returns the parametric coordinates of a point on the sphere:
// u is the longitude around Y, v the latitude from the south pole, both in [0,1]
func (s Sphere) UV(point core.Vec3) core.Vec2 {
	p := point.Subtract(s.Center).Normalize()
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// Intersect tests if a ray intersects with the sphere
func (s Sphere) Intersect(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	uv := s.UV(point)
	return core.HitRecord{
		Hit:    true,
		PrimID: s.PrimID,
		GeomID: s.GeomID,
		T:      root,
		U:      uv.X,
		V:      uv.Y,
		Point:  point,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
