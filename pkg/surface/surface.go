package surface

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Surface is the shading description of one hit point.
// Tint is meaningful only when HasTint is set, which every surface of a
// textured bundle has.
type Surface[M any] struct {
	Normal   core.Vec3
	Material M
	Tint     core.Vec3
	HasTint  bool
}

func makeSurface[M any](normal core.Vec3, mat M) Surface[M] {
	return Surface[M]{Normal: normal, Material: mat}
}

func makeTintedSurface[M any](normal core.Vec3, mat M, tint core.Vec3) Surface[M] {
	return Surface[M]{Normal: normal, Material: mat, Tint: tint, HasTint: true}
}

// DefaultSurface is the zero surface of the given capability's shape.
// Packet lanes without a hit resolve to it.
func DefaultSurface[M any](c Capability) Surface[M] {
	var zero M
	if c.Tinted() {
		return makeTintedSurface(core.Vec3{}, zero, core.Vec3{})
	}
	return makeSurface(core.Vec3{}, zero)
}
