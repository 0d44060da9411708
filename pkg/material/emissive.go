package material

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) Emissive {
	return Emissive{Emission: emission}
}

// Emit returns the emitted light for this material
func (e Emissive) Emit() core.Vec3 {
	return e.Emission
}

// IsEmissive is always true for Emissive
func (e Emissive) IsEmissive() bool {
	return true
}

// EvaluateBRDF returns black: lights don't reflect, they only emit
func (e Emissive) EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}
