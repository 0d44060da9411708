package lights

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// PointLight is an isotropic point light with classic constant, linear and
// quadratic distance attenuation
type PointLight struct {
	position  core.Vec3
	color     core.Vec3 // Light color
	intensity float64   // Scale applied to color

	constantAttenuation  float64
	linearAttenuation    float64
	quadraticAttenuation float64
}

// NewPointLight creates a point light with constant attenuation 1 and no
// distance falloff
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		position:            position,
		color:               color,
		intensity:           intensity,
		constantAttenuation: 1,
	}
}

// WithAttenuation returns a copy of the light using the given coefficients
func (pl *PointLight) WithAttenuation(constant, linear, quadratic float64) *PointLight {
	cp := *pl
	cp.constantAttenuation = constant
	cp.linearAttenuation = linear
	cp.quadraticAttenuation = quadratic
	return &cp
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Attenuation returns the constant, linear and quadratic coefficients
func (pl *PointLight) Attenuation() (constant, linear, quadratic float64) {
	return pl.constantAttenuation, pl.linearAttenuation, pl.quadraticAttenuation
}

// Intensity is the unattenuated radiant intensity. It is the same in every
// direction, so pos is ignored.
func (pl *PointLight) Intensity(pos core.Vec3) core.Vec3 {
	return pl.color.Multiply(pl.intensity)
}

// falloff returns the attenuation factor at distance d
func (pl *PointLight) falloff(d float64) float64 {
	denom := pl.constantAttenuation + pl.linearAttenuation*d + pl.quadraticAttenuation*d*d
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

// Sample implements the Light interface. The sampled position is always the
// light's position.
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLightVec := pl.position.Subtract(point)
	distance := toLightVec.Length()

	if distance == 0 {
		// Avoid division by zero if point is exactly at light position
		return LightSample{
			Point:     pl.position,
			Direction: core.NewVec3(0, 1, 0),
			PDF:       1.0,
		}
	}

	return LightSample{
		Point:     pl.position,
		Direction: toLightVec.Multiply(1 / distance),
		Distance:  distance,
		Emission:  pl.Intensity(point).Multiply(pl.falloff(distance)),
		PDF:       1.0, // delta light
	}
}
