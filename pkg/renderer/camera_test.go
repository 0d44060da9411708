package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-surface-resolver/pkg/core"
)

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 2,
		VFov:        90,
	})

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected origin (0,0,5), got %v", ray.Origin)
	}
	dir := ray.Direction.Normalize()
	if math.Abs(dir.Z+1) > 1e-9 || math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
		t.Errorf("Expected center ray along -Z, got %v", dir)
	}
}

func TestCamera_Corners(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 2,
		VFov:        90,
	})

	// 90 degree vertical fov puts the image plane at distance 1 with half height 1
	tests := []struct {
		s, t     float64
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-2, -1, -1)},
		{1, 1, core.NewVec3(2, 1, -1)},
		{1, 0, core.NewVec3(2, -1, -1)},
	}

	for _, tt := range tests {
		dir := camera.GetRay(tt.s, tt.t).Direction
		if dir.Subtract(tt.expected).Length() > 1e-9 {
			t.Errorf("GetRay(%v, %v): expected direction %v, got %v", tt.s, tt.t, tt.expected, dir)
		}
	}
}
