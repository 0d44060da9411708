package material

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// Texture is the sampling capability the surface resolver consumes.
// A texture with zero width or height is an unbound placeholder.
type Texture interface {
	Width() int
	Height() int
	Sample(uv core.Vec2) core.Vec3
}

// ImageTexture provides color from a 2D image.
// The zero value is an unbound placeholder texture.
type ImageTexture struct {
	width  int
	height int
	pixels []core.Vec3 // Row-major: pixels[y*width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// NewSolidTexture creates a 1x1 texture of a single color
func NewSolidTexture(color core.Vec3) *ImageTexture {
	return NewImageTexture(1, 1, []core.Vec3{color})
}

// Width returns the texture width in texels
func (t *ImageTexture) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

// Height returns the texture height in texels
func (t *ImageTexture) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Pixels returns the row-major texel data
func (t *ImageTexture) Pixels() []core.Vec3 {
	return t.pixels
}

// Sample samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Sample(uv core.Vec2) core.Vec3 {
	// Wrap UV coordinates to [0, 1]
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.width))
	y := int((1.0 - v) * float64(t.height))

	// Clamp to image bounds
	x = max(0, min(x, t.width-1))
	y = max(0, min(y, t.height-1))

	return t.pixels[y*t.width+x]
}
