package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/simd"
)

// Config contains configuration for a preview render
type Config struct {
	Width       int
	Height      int
	TileSize    int        // Size of each tile (32x32 recommended)
	NumWorkers  int        // Number of parallel workers (0 = use CPU count)
	PacketWidth simd.Width // Rays per packet (0 = widest the CPU supports)
	Mode        Mode
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      225,
		TileSize:    32,
		NumWorkers:  0,
		PacketWidth: 0,
		Mode:        ModeShaded,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.TileSize)
	}
	if c.PacketWidth != 0 && !c.PacketWidth.Valid() {
		return fmt.Errorf("invalid packet width %d", int(c.PacketWidth))
	}
	return nil
}

// Renderer renders surface previews of a scene
type Renderer[M material.Material] struct {
	scene  *Scene[M]
	config Config
	tiles  []*Tile
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer[M material.Material](scene *Scene[M], config Config, logger core.Logger) (*Renderer[M], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if scene == nil || scene.Camera == nil || scene.BVH == nil || scene.Resolver == nil {
		return nil, errors.New("scene needs a camera, a BVH and a resolver")
	}
	if config.PacketWidth == 0 {
		config.PacketWidth = simd.NativeWidth()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Renderer[M]{
		scene:  scene,
		config: config,
		tiles:  NewTileGrid(config.Width, config.Height, config.TileSize),
		logger: logger,
	}, nil
}

// Config returns the effective configuration
func (r *Renderer[M]) Config() Config {
	return r.config
}

// Render renders one frame. It stops early and returns ctx.Err() when ctx
// is cancelled.
func (r *Renderer[M]) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	stats := RenderStats{JobID: uuid.New()}
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))

	pool := NewWorkerPool(func() *TileRenderer[M] {
		return NewTileRenderer(r.scene, r.config.Width, r.config.Height, r.config.Mode, r.config.PacketWidth)
	}, r.config.NumWorkers, len(r.tiles))

	r.logger.Printf("Render %s: %dx%d, %d tiles, %s packets, mode %s (using %d workers)...\n",
		stats.JobID, r.config.Width, r.config.Height, len(r.tiles),
		r.config.PacketWidth.Clamp(), r.config.Mode, pool.GetNumWorkers())

	pool.Start()
	for taskID, tile := range r.tiles {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img, Ctx: ctx})
	}
	pool.Stop()

	completed := 0
	var tileErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if tileErr == nil {
				tileErr = result.Error
			}
			continue
		}
		r.tiles[result.TaskID].PassesCompleted++
		stats.Merge(result.Stats)
		completed++
	}

	if err := ctx.Err(); err != nil {
		r.logger.Printf("Render %s cancelled after %d of %d tiles\n", stats.JobID, completed, len(r.tiles))
		return nil, RenderStats{}, err
	}
	if tileErr != nil {
		return nil, RenderStats{}, tileErr
	}

	stats.Duration = time.Since(start)
	r.logger.Printf("Render %s completed in %v (%d rays, %.1f%% hits)\n",
		stats.JobID, stats.Duration, stats.Rays, 100*stats.HitRatio())

	return img, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of times this tile was rendered
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
