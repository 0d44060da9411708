package geometry

import (
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// Kind identifies the active member of a Primitive
type Kind uint8

const (
	KindTriangle Kind = iota
	KindSphere
	KindDisc
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindSphere:
		return "sphere"
	case KindDisc:
		return "disc"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Primitive is a closed variant over the supported primitive kinds, used
// when one scene mixes kinds in a single primitive array. Each member is
// stored by value.
type Primitive struct {
	kind     Kind
	triangle Triangle
	sphere   Sphere
	disc     Disc
}

// FromTriangle wraps t in a Primitive
func FromTriangle(t Triangle) Primitive {
	return Primitive{kind: KindTriangle, triangle: t}
}

// FromSphere wraps s in a Primitive
func FromSphere(s Sphere) Primitive {
	return Primitive{kind: KindSphere, sphere: s}
}

// FromDisc wraps d in a Primitive
func FromDisc(d Disc) Primitive {
	return Primitive{kind: KindDisc, disc: d}
}

// Kind returns the active member's kind
func (p Primitive) Kind() Kind { return p.kind }

// Triangle returns the triangle member; only meaningful when Kind is KindTriangle
func (p Primitive) Triangle() Triangle { return p.triangle }

// Sphere returns the sphere member; only meaningful when Kind is KindSphere
func (p Primitive) Sphere() Sphere { return p.sphere }

// Disc returns the disc member; only meaningful when Kind is KindDisc
func (p Primitive) Disc() Disc { return p.disc }

func (p Primitive) shape() Shape {
	switch p.kind {
	case KindSphere:
		return p.sphere
	case KindDisc:
		return p.disc
	default:
		return p.triangle
	}
}

// Intersect delegates to the active member
func (p Primitive) Intersect(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return p.shape().Intersect(ray, tMin, tMax)
}

// BoundingBox delegates to the active member
func (p Primitive) BoundingBox() core.AABB {
	return p.shape().BoundingBox()
}
