package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/simd"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

const (
	rayTMin = 0.001
	rayTMax = math.MaxFloat64
)

// TileRenderer renders image regions by tracing packets of primary rays,
// resolving their surfaces and shading them lane by lane
type TileRenderer[M material.Material] struct {
	scene         *Scene[M]
	width, height int
	mode          Mode
	packetWidth   simd.Width
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer[M material.Material](scene *Scene[M], width, height int, mode Mode, packetWidth simd.Width) *TileRenderer[M] {
	return &TileRenderer[M]{
		scene:       scene,
		width:       width,
		height:      height,
		mode:        mode,
		packetWidth: packetWidth.Clamp(),
	}
}

// RenderTileBounds renders the pixels within bounds into img. Pixels are
// taken in row-major order and grouped into packets; the last packet of a
// tile may be partially filled.
func (tr *TileRenderer[M]) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	pixels := make([]image.Point, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, image.Pt(x, y))
		}
	}

	stats := RenderStats{TotalPixels: len(pixels)}
	step := int(tr.packetWidth)
	for start := 0; start < len(pixels); start += step {
		packet := pixels[start:min(start+step, len(pixels))]
		switch tr.packetWidth {
		case simd.Width8:
			tr.renderPacket8(packet, img, &stats)
		case simd.Width4:
			tr.renderPacket4(packet, img, &stats)
		default:
			tr.renderPixel(packet[0], img, &stats)
		}
	}
	return stats
}

// primaryRay returns the ray through the center of pixel p
func (tr *TileRenderer[M]) primaryRay(p image.Point) core.Ray {
	s := (float64(p.X) + 0.5) / float64(tr.width)
	t := 1 - (float64(p.Y)+0.5)/float64(tr.height)
	return tr.scene.Camera.GetRay(s, t)
}

func (tr *TileRenderer[M]) renderPixel(p image.Point, img *image.RGBA, stats *RenderStats) {
	ray := tr.primaryRay(p)
	hit := tr.scene.BVH.ClosestHit(ray, rayTMin, rayTMax)
	s := tr.scene.Resolver.Resolve(hit)

	img.SetRGBA(p.X, p.Y, tr.toColor(tr.shade(ray, hit.Hit, hit.Point, s, surface.HasEmissiveMaterial(s))))

	stats.Rays++
	if hit.Hit {
		stats.Hits++
	}
}

func (tr *TileRenderer[M]) renderPacket4(pixels []image.Point, img *image.RGBA, stats *RenderStats) {
	var rays [4]core.Ray
	var active simd.Mask4
	for i, p := range pixels {
		rays[i] = tr.primaryRay(p)
		active[i] = true
	}

	hits := tr.scene.BVH.ClosestHit4(rays, active, rayTMin, rayTMax)
	surfaces := tr.scene.Resolver.Resolve4(hits)
	emissive := surface.HasEmissiveMaterial4(surfaces)

	for i, p := range pixels {
		c := tr.shade(rays[i], hits.Hit[i], hits.Point.Lane(i), surfaces.Lane(i), emissive[i])
		img.SetRGBA(p.X, p.Y, tr.toColor(c))
	}

	stats.Packets++
	stats.Rays += len(pixels)
	stats.Hits += hits.Hit.Count()
}

func (tr *TileRenderer[M]) renderPacket8(pixels []image.Point, img *image.RGBA, stats *RenderStats) {
	var rays [8]core.Ray
	var active simd.Mask8
	for i, p := range pixels {
		rays[i] = tr.primaryRay(p)
		active[i] = true
	}

	hits := tr.scene.BVH.ClosestHit8(rays, active, rayTMin, rayTMax)
	surfaces := tr.scene.Resolver.Resolve8(hits)
	emissive := surface.HasEmissiveMaterial8(surfaces)

	for i, p := range pixels {
		c := tr.shade(rays[i], hits.Hit[i], hits.Point.Lane(i), surfaces.Lane(i), emissive[i])
		img.SetRGBA(p.X, p.Y, tr.toColor(c))
	}

	stats.Packets++
	stats.Rays += len(pixels)
	stats.Hits += hits.Hit.Count()
}

// toColor quantizes a pixel value. Only shaded output is gamma corrected;
// the debug modes show raw values.
func (tr *TileRenderer[M]) toColor(c core.Vec3) color.RGBA {
	if tr.mode == ModeShaded {
		return vec3ToColor(c)
	}
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(math.Round(255 * c.X)),
		G: uint8(math.Round(255 * c.Y)),
		B: uint8(math.Round(255 * c.Z)),
		A: 255,
	}
}
