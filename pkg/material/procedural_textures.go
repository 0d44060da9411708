package material

import (
	"github.com/df07/go-surface-resolver/pkg/core"
)

// generateTexture fills a width x height texture from a texel function.
// y counts rows from the top of the image.
func generateTexture(width, height int, texel func(x, y int) core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = texel(x, y)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// unit maps i in [0, n) to [0, 1]
func unit(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(checkSize, 1)
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture creates a texture showing texture coordinates as
// colors: U maps to red, V to green
func NewUVDebugTexture(width, height int) *ImageTexture {
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		// rows run top-down while V runs bottom-up
		return core.NewVec3(unit(x, width), 1-unit(y, height), 0)
	})
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	return generateTexture(width, height, func(x, y int) core.Vec3 {
		t := unit(y, height)
		return color1.Multiply(1.0 - t).Add(color2.Multiply(t))
	})
}
