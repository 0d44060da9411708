package material

import (
	"fmt"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// Kind identifies the active member of a Generic material
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindEmissive
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindEmissive:
		return "emissive"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Generic is a closed variant over the supported material kinds. It lets a
// scene mix material kinds in one array while staying a plain value.
// The zero value is a black Lambertian.
type Generic struct {
	kind       Kind
	lambertian Lambertian
	metal      Metal
	emissive   Emissive
}

// FromLambertian wraps l in a Generic
func FromLambertian(l Lambertian) Generic {
	return Generic{kind: KindLambertian, lambertian: l}
}

// FromMetal wraps m in a Generic
func FromMetal(m Metal) Generic {
	return Generic{kind: KindMetal, metal: m}
}

// FromEmissive wraps e in a Generic
func FromEmissive(e Emissive) Generic {
	return Generic{kind: KindEmissive, emissive: e}
}

// Kind returns the active member's kind
func (g Generic) Kind() Kind {
	return g.kind
}

// active returns the active member as an interface value
func (g Generic) active() Material {
	switch g.kind {
	case KindMetal:
		return g.metal
	case KindEmissive:
		return g.emissive
	default:
		return g.lambertian
	}
}

// IsEmissive asks the active member
func (g Generic) IsEmissive() bool {
	return IsEmissive(g.active())
}

// Emit returns the active member's emission, black for non-emitters
func (g Generic) Emit() core.Vec3 {
	if e, ok := g.active().(Emitter); ok {
		return e.Emit()
	}
	return core.Vec3{}
}

// EvaluateBRDF delegates to the active member
func (g Generic) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return g.active().EvaluateBRDF(incomingDir, outgoingDir, normal)
}

// Lambertian returns the diffuse stand-in for g: a Lambertian keeps its
// albedo, a metal reflects its albedo diffusely and an emitter becomes a
// clamped diffuse surface of its emission color.
func (g Generic) Lambertian() Lambertian {
	switch g.kind {
	case KindMetal:
		return NewLambertian(g.metal.Albedo)
	case KindEmissive:
		return NewLambertian(g.emissive.Emission.Clamp(0, 1))
	default:
		return g.lambertian
	}
}
