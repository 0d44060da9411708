package material

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Material is the shading payload stored per geometry.
// Values are copied into every resolved surface, so implementations are
// small value types.
type Material interface {
	// EvaluateBRDF evaluates the BRDF for specific incoming/outgoing directions
	EvaluateBRDF(incomingDir, outgoingDir, normal core.Vec3) core.Vec3
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit() core.Vec3
}

// EmissionReporter is the capability probe for light emitting materials.
// Materials without an emissive concept simply do not implement it.
type EmissionReporter interface {
	IsEmissive() bool
}

// IsEmissive reports whether m emits light. Anything that does not
// implement EmissionReporter is not an emitter.
func IsEmissive(m any) bool {
	r, ok := m.(EmissionReporter)
	return ok && r.IsEmissive()
}
