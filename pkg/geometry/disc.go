package geometry

import (
	"math"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Unit normal
	Radius float64
	Right  core.Vec3 // Tangent, perpendicular to Normal
	Up     core.Vec3 // Bitangent, perpendicular to Normal and Right
	PrimID int
	GeomID int
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, primID, geomID int) Disc {
	n := normal.Normalize()

	var right core.Vec3
	if math.Abs(n.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}
	right = right.Cross(n).Normalize()
	up := n.Cross(right).Normalize()

	return Disc{
		Center: center,
		Normal: n,
		Radius: radius,
		Right:  right,
		Up:     up,
		PrimID: primID,
		GeomID: geomID,
	}
}

// Intersect implements the Shape interface.
// U and V map the disc's bounding square onto [0,1]².
func (d Disc) Intersect(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-6 {
		return core.HitRecord{}, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	local := point.Subtract(d.Center)
	if local.LengthSquared() > d.Radius*d.Radius {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		Hit:    true,
		PrimID: d.PrimID,
		GeomID: d.GeomID,
		T:      t,
		U:      0.5 + local.Dot(d.Right)/(2*d.Radius),
		V:      0.5 + local.Dot(d.Up)/(2*d.Radius),
		Point:  point,
	}, true
}

// BoundingBox implements the Shape interface
func (d Disc) BoundingBox() core.AABB {
	r := d.Right.Multiply(d.Radius)
	u := d.Up.Multiply(d.Radius)
	return core.NewAABBFromPoints(
		d.Center.Add(r).Add(u),
		d.Center.Add(r).Subtract(u),
		d.Center.Subtract(r).Add(u),
		d.Center.Subtract(r).Subtract(u),
	)
}
