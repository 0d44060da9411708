package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-surface-resolver/pkg/core"
	"github.com/df07/go-surface-resolver/pkg/loaders"
	"github.com/df07/go-surface-resolver/pkg/material"
	"github.com/df07/go-surface-resolver/pkg/renderer"
	"github.com/df07/go-surface-resolver/pkg/scene"
	"github.com/df07/go-surface-resolver/pkg/simd"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

// maxTextureSize bounds textures loaded with -texture
const maxTextureSize = 1024

// Config holds the parsed command line
type Config struct {
	SceneID   string
	Mesh      string
	Texture   string
	Materials string // "simple" or "generic"
	Output    string

	SceneOptions scene.Options
	Renderer     renderer.Config
}

func parseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("surfview", flag.ContinueOnError)

	sceneID := fs.String("scene", "textures", "Built-in scene: "+sceneIDs())
	mesh := fs.String("mesh", "", "Mesh file to render instead of a built-in scene (.ply, .obj, .stl)")
	normalize := fs.Bool("normalize", false, "Fit the mesh into the [-1,1] cube and smooth its normals")
	texture := fs.String("texture", "", "Image applied to every geometry (.png, .jpg, .bmp, .tiff, .webp)")
	materials := fs.String("materials", "simple", "Material representation: 'simple' or 'generic'")
	normals := fs.String("normals", surface.NormalsPerVertex.String(), "Normal binding: 'per-vertex', 'per-face' or 'precomputed'")
	colors := fs.String("colors", "none", "Color binding: 'none', 'per-vertex', 'per-face' or 'per-geometry'")
	width := fs.Int("width", 400, "Image width")
	height := fs.Int("height", 225, "Image height")
	packet := fs.Int("packet", 0, "Rays per packet: 1, 4 or 8 (0 = widest the CPU supports)")
	mode := fs.String("mode", renderer.ModeShaded.String(), "Render mode: 'shaded', 'normals' or 'tint'")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	out := fs.String("out", "", "Output PNG (default output/<scene>/render_<timestamp>.png)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	config := Config{
		SceneID:      *sceneID,
		Mesh:         *mesh,
		Texture:      *texture,
		Materials:    *materials,
		Output:       *out,
		SceneOptions: scene.DefaultOptions(),
		Renderer:     renderer.DefaultConfig(),
	}

	config.SceneOptions.NormalizeMesh = *normalize

	if config.Materials != "simple" && config.Materials != "generic" {
		return Config{}, fmt.Errorf("unknown material representation %q", config.Materials)
	}

	nb, err := surface.ParseNormalBinding(*normals)
	if err != nil {
		return Config{}, err
	}
	config.SceneOptions.NormalBinding = nb

	if *colors != "none" {
		cb, err := surface.ParseColorBinding(*colors)
		if err != nil {
			return Config{}, err
		}
		config.SceneOptions.ColorBinding = cb
		config.SceneOptions.Colors = true
	}

	m, err := renderer.ParseMode(*mode)
	if err != nil {
		return Config{}, err
	}

	config.Renderer.Width = *width
	config.Renderer.Height = *height
	config.Renderer.PacketWidth = simd.Width(*packet)
	config.Renderer.NumWorkers = *workers
	config.Renderer.Mode = m
	if err := config.Renderer.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func sceneIDs() string {
	var ids []string
	for _, info := range scene.ListScenes() {
		ids = append(ids, "'"+info.ID+"'")
	}
	return strings.Join(ids, ", ")
}

// createScene resolves the scene description for config
func createScene(config Config) (*scene.Description, error) {
	opts := config.SceneOptions
	if config.Texture != "" {
		tex, err := loaders.LoadTexture(config.Texture, loaders.TextureOptions{MaxSize: maxTextureSize})
		if err != nil {
			return nil, err
		}
		opts.Texture = tex
	}

	id := config.SceneID
	if config.Mesh != "" {
		id = scene.MeshSceneInfo(config.Mesh).ID
	}
	desc, err := scene.LoadScene(id, opts)
	if err != nil {
		return nil, err
	}
	desc.Camera.AspectRatio = float64(config.Renderer.Width) / float64(config.Renderer.Height)
	return desc, nil
}

// render builds the scene with the material representation picked by
// convert and renders it
func render[M material.Material](ctx context.Context, desc *scene.Description, convert func(material.Generic) M, config renderer.Config, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	s, err := scene.Build(desc, convert, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	r, err := renderer.NewRenderer(s, config, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return r.Render(ctx)
}

// run renders config and returns the written filename
func run(ctx context.Context, config Config, logger *log.Logger) (string, error) {
	desc, err := createScene(config)
	if err != nil {
		return "", fmt.Errorf("failed to create scene: %w", err)
	}
	logger.Printf("Using scene %q with %s materials\n", desc.Name, config.Materials)

	var (
		img   *image.RGBA
		stats renderer.RenderStats
	)
	startTime := time.Now()
	if config.Materials == "generic" {
		img, stats, err = render(ctx, desc, scene.Generic, config.Renderer, logger)
	} else {
		img, stats, err = render(ctx, desc, scene.Simple, config.Renderer, logger)
	}
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v (%d rays, %.1f%% hits)\n", time.Since(startTime), stats.Rays, 100*stats.HitRatio())

	filename := config.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", desc.Name, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := savePNG(img, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func savePNG(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}

func main() {
	config, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stdout, "", log.LstdFlags)
	filename, err := run(ctx, config, logger)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("Render saved as %s\n", filename)
}
