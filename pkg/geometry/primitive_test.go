package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

func mixedScene() []Primitive {
	return []Primitive{
		FromTriangle(NewTriangle(
			core.NewVec3(-1, -1, -3), core.NewVec3(1, -1, -3), core.NewVec3(0, 1, -3),
			[3]int{0, 1, 2}, 0, 0,
		)),
		FromSphere(NewSphere(core.NewVec3(3, 0, -3), 1, 1, 1)),
		FromDisc(NewDisc(core.NewVec3(-3, 0, -3), core.NewVec3(0, 0, 1), 1, 2, 2)),
	}
}

func TestPrimitive_Delegation(t *testing.T) {
	prims := mixedScene()
	assert.Equal(t, KindTriangle, prims[0].Kind())
	assert.Equal(t, KindSphere, prims[1].Kind())
	assert.Equal(t, KindDisc, prims[2].Kind())
	assert.Equal(t, "disc", KindDisc.String())

	assert.Equal(t, prims[1].Sphere().BoundingBox(), prims[1].BoundingBox())

	hit, ok := prims[1].Intersect(core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	require.True(t, ok)
	assert.Equal(t, 1, hit.PrimID)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
}

func TestBVH_ClosestHit(t *testing.T) {
	bvh := NewBVH(mixedScene())

	tests := []struct {
		name   string
		origin core.Vec3
		hit    bool
		primID int
	}{
		{"triangle", core.NewVec3(0, 0, 0), true, 0},
		{"sphere", core.NewVec3(3, 0, 0), true, 1},
		{"disc", core.NewVec3(-3, 0, 0), true, 2},
		{"miss", core.NewVec3(0, 10, 0), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := bvh.ClosestHit(core.NewRay(tt.origin, core.NewVec3(0, 0, -1)), 0.001, 100)
			assert.Equal(t, tt.hit, hit.Hit)
			if tt.hit {
				assert.Equal(t, tt.primID, hit.PrimID)
			}
		})
	}
}

func TestBVH_ClosestHitPicksNearest(t *testing.T) {
	// Many spheres along -Z so the build splits into several leaves
	var spheres []Sphere
	for i := 0; i < 40; i++ {
		spheres = append(spheres, NewSphere(core.NewVec3(0, 0, -float64(3*i+3)), 1, i, 0))
	}
	bvh := NewBVH(spheres)
	require.NotNil(t, bvh.Root)
	assert.Nil(t, bvh.Root.Shapes, "root should be an interior node")

	hit := bvh.ClosestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 1000)
	require.True(t, hit.Hit)
	assert.Equal(t, 0, hit.PrimID)
	assert.InDelta(t, 2.0, hit.T, 1e-9)
}

func TestBVH_Packets(t *testing.T) {
	bvh := NewBVH(mixedScene())
	dir := core.NewVec3(0, 0, -1)

	rays4 := [4]core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), dir),
		core.NewRay(core.NewVec3(3, 0, 0), dir),
		core.NewRay(core.NewVec3(0, 10, 0), dir),
		core.NewRay(core.NewVec3(-3, 0, 0), dir),
	}
	hr4 := bvh.ClosestHit4(rays4, simd.Mask4{true, true, true, false}, 0.001, 100)
	assert.Equal(t, simd.Mask4{true, true, false, false}, hr4.Hit)
	assert.Equal(t, 1, hr4.PrimID[1])

	var rays8 [8]core.Ray
	var active simd.Mask8
	for i := range rays8 {
		rays8[i] = rays4[i%4]
		active[i] = true
	}
	hr8 := bvh.ClosestHit8(rays8, active, 0.001, 100)
	assert.Equal(t, simd.Mask8{true, true, false, true, true, true, false, true}, hr8.Hit)
	assert.Equal(t, 2, hr8.PrimID[7])

	empty := NewBVH([]Sphere{})
	assert.False(t, empty.ClosestHit(rays4[0], 0.001, 100).Hit)
}
