package renderer

import (
	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/geometry"
	"github.com/df07/go-surface-resolver/pkg/lights"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// Scene is everything the preview renderer needs: the acceleration
// structure producing hit records and the resolver turning them into
// surfaces. M is the material representation the bundle was built with.
type Scene[M material.Material] struct {
	Camera     *Camera
	BVH        *geometry.BVH
	Resolver   *surface.Resolver[M]
	Light      lights.Light // nil renders ambient only
	Background core.Vec3
	Ambient    core.Vec3 // Constant fill light in shaded mode
}
