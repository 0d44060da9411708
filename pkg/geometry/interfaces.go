package geometry

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Intersect(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
	BoundingBox() core.AABB
}
