package material

import (
	"math"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// Metal represents a glossy reflective material
type Metal struct {
	Albedo core.Vec3 // Reflectance
	Fuzz   float64   // 0 = mirror, 1 = very rough
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) Metal {
	return Metal{Albedo: albedo, Fuzz: math.Max(0, math.Min(fuzz, 1))}
}

// EvaluateBRDF evaluates a normalized Phong lobe around the mirror direction.
// incomingDir points from the surface toward the light. The exponent
// shrinks as Fuzz grows.
func (m Metal) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	if outgoingDir.Dot(normal) <= 0 {
		return core.Vec3{}
	}
	reflected := reflect(incomingDir.Normalize().Negate(), normal)
	cosAlpha := reflected.Dot(outgoingDir.Normalize())
	if cosAlpha <= 0 {
		return core.Vec3{}
	}
	exponent := 1 + (1-m.Fuzz)*255
	norm := (exponent + 2) / (2 * math.Pi)
	return m.Albedo.Multiply(norm * math.Pow(cosAlpha, exponent))
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
