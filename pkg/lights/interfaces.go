package lights

import "github.com/df07/go-surface-resolver/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a light source the preview shader can sample
type Light interface {
	Type() LightType

	// Sample returns the light arriving at point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec3) LightSample
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Direction core.Vec3 // Direction from shading point to light
	Distance  float64   // Distance to light
	Emission  core.Vec3 // Incident light after attenuation
	PDF       float64   // Probability density of this sample
}
