package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-surface-resolver/pkg/core"
)

// quadrants returns a 2x2 image: white, red / green, blue
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestLoadTexture_Formats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"test.png":  func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"test.bmp":  func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
		"test.tiff": func(b *bytes.Buffer, img image.Image) error { return tiff.Encode(b, img, nil) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf, quadrants()))
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

			tex, err := LoadTexture(path, TextureOptions{})
			require.NoError(t, err)
			assert.Equal(t, 2, tex.Width())
			assert.Equal(t, 2, tex.Height())

			pixels := tex.Pixels()
			assert.Equal(t, core.NewVec3(1, 1, 1), pixels[0])
			assert.Equal(t, core.NewVec3(1, 0, 0), pixels[1])
			assert.Equal(t, core.NewVec3(0, 1, 0), pixels[2])
			assert.Equal(t, core.NewVec3(0, 0, 1), pixels[3])

			// V=1 is the top row
			assert.Equal(t, core.NewVec3(1, 0, 0), tex.Sample(core.NewVec2(0.75, 0.75)))
			assert.Equal(t, core.NewVec3(0, 1, 0), tex.Sample(core.NewVec2(0.25, 0.25)))
		})
	}
}

func TestReadTexture_MaxSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex, err := ReadTexture(bytes.NewReader(buf.Bytes()), TextureOptions{MaxSize: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, tex.Width())
	assert.Equal(t, 2, tex.Height())

	tex, err = ReadTexture(bytes.NewReader(buf.Bytes()), TextureOptions{MaxSize: 16})
	require.NoError(t, err)
	assert.Equal(t, 8, tex.Width())
}

func TestReadTexture_FlipV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, quadrants()))

	tex, err := ReadTexture(bytes.NewReader(buf.Bytes()), TextureOptions{FlipV: true})
	require.NoError(t, err)
	pixels := tex.Pixels()
	assert.Equal(t, core.NewVec3(0, 1, 0), pixels[0])
	assert.Equal(t, core.NewVec3(0, 0, 1), pixels[1])
	assert.Equal(t, core.NewVec3(1, 1, 1), pixels[2])
	assert.Equal(t, core.NewVec3(1, 0, 0), pixels[3])
}

func TestReadTexture_Unsupported(t *testing.T) {
	_, err := ReadTexture(bytes.NewReader([]byte("not an image")), TextureOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "missing.png"), TextureOptions{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}
