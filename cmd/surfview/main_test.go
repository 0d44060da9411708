package main

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-surface-resolver/pkg/renderer"
	"github.com/df07/go-surface-resolver/pkg/simd"
	"github.com/df07/go-surface-resolver/pkg/surface"
)

func TestParseFlags(t *testing.T) {
	config, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "textures", config.SceneID)
	assert.Equal(t, "simple", config.Materials)
	assert.Equal(t, surface.NormalsPerVertex, config.SceneOptions.NormalBinding)
	assert.False(t, config.SceneOptions.Colors)
	assert.Equal(t, renderer.ModeShaded, config.Renderer.Mode)

	config, err = parseFlags([]string{
		"-scene", "sphere-grid", "-materials", "generic", "-normals", "per-face",
		"-colors", "per-geometry", "-packet", "8", "-mode", "normals", "-width", "64", "-height", "32",
	})
	require.NoError(t, err)
	assert.Equal(t, "sphere-grid", config.SceneID)
	assert.Equal(t, surface.NormalsPerFace, config.SceneOptions.NormalBinding)
	assert.Equal(t, surface.ColorsPerGeometry, config.SceneOptions.ColorBinding)
	assert.True(t, config.SceneOptions.Colors)
	assert.Equal(t, simd.Width8, config.Renderer.PacketWidth)
	assert.Equal(t, renderer.ModeNormals, config.Renderer.Mode)
	assert.Equal(t, 64, config.Renderer.Width)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"materials", []string{"-materials", "fancy"}},
		{"normals", []string{"-normals", "smooth"}},
		{"colors", []string{"-colors", "rainbow"}},
		{"mode", []string{"-mode", "wireframe"}},
		{"packet", []string{"-packet", "3"}},
		{"size", []string{"-width", "0"}},
		{"unknown flag", []string{"-samples", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"textures scene", []string{"-scene", "textures"}, false},
		{"sphere grid scene", []string{"-scene", "sphere-grid"}, false},
		{"unknown scene", []string{"-scene", "nonexistent"}, true},
		{"missing mesh", []string{"-mesh", "models/nonexistent.obj"}, true},
		{"missing texture", []string{"-texture", "textures/nonexistent.png"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := parseFlags(tt.args)
			require.NoError(t, err)

			desc, err := createScene(config)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, desc)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 400.0/225.0, desc.Camera.AspectRatio, 1e-12)
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	objFile := filepath.Join(dir, "tri.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(objFile, []byte(obj), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{"simple textures", []string{"-scene", "textures"}},
		{"generic sphere grid", []string{"-scene", "sphere-grid", "-materials", "generic", "-packet", "4"}},
		{"mesh normals", []string{"-mesh", objFile, "-mode", "normals", "-normals", "precomputed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name, "render.png")
			args := append([]string{"-width", "24", "-height", "16", "-workers", "2", "-out", out}, tt.args...)
			config, err := parseFlags(args)
			require.NoError(t, err)

			var logs bytes.Buffer
			filename, err := run(context.Background(), config, log.New(&logs, "", 0))
			require.NoError(t, err)
			assert.Equal(t, out, filename)
			assert.Contains(t, logs.String(), "Render completed")

			f, err := os.Open(filename)
			require.NoError(t, err)
			defer f.Close()
			img, err := png.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, 24, img.Bounds().Dx())
			assert.Equal(t, 16, img.Bounds().Dy())
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	config, err := parseFlags([]string{"-width", "64", "-height", "64", "-out", filepath.Join(t.TempDir(), "x.png")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = run(ctx, config, log.New(&bytes.Buffer{}, "", 0))
	assert.ErrorIs(t, err, context.Canceled)
}
