package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/material"
)

// TextureOptions controls texture loading
type TextureOptions struct {
	// MaxSize bounds the larger image dimension; bigger images are
	// downscaled keeping their aspect ratio. 0 disables the limit.
	MaxSize int
	// FlipV mirrors the image vertically, for texture coordinates
	// authored with V pointing down
	FlipV bool
}

// LoadTexture loads a PNG, JPEG, BMP, TIFF or WebP image as a texture
func LoadTexture(filename string, opts TextureOptions) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	tex, err := ReadTexture(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tex, nil
}

// ReadTexture decodes an image stream into a texture. JPEG images are
// rotated according to their EXIF orientation.
func ReadTexture(r io.Reader, opts TextureOptions) (*material.ImageTexture, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("failed to decode image: %w", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if opts.MaxSize > 0 && (bounds.Dx() > opts.MaxSize || bounds.Dy() > opts.MaxSize) {
		img = resize.Thumbnail(uint(opts.MaxSize), uint(opts.MaxSize), img, resize.Bilinear)
	}
	if opts.FlipV {
		img = imaging.FlipV(img)
	}

	return imageToTexture(img), nil
}

// imageToTexture converts an image to [0,1] texels, row-major from
// the top-left corner
func imageToTexture(img image.Image) *material.ImageTexture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels)
}
