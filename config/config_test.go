package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, grid.PaintOnce, policy)
	assert.Equal(t, 32.0, cfg.Grid.EdgeLength)
	assert.Equal(t, "#1c1f21", cfg.Colors.Background.String())

	opts := cfg.GridOptions()
	assert.False(t, opts.DuplicateOrigin)
	assert.Equal(t, float32(1), opts.StrokeWidth)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gridpaint.yaml", `
window:
  width: 800
grid:
  edge_length: 16
  duplicate_origin: true
paint:
  policy: always
  button: right
capture:
  dir: shots
colors:
  background: "#000000"
  fill: "#ff000080"
hud: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, 16.0, cfg.Grid.EdgeLength)
	assert.True(t, cfg.Grid.DuplicateOrigin)
	assert.True(t, cfg.HUD)
	assert.Equal(t, "shots", cfg.Capture.Dir)
	assert.Equal(t, "S", cfg.Capture.Key)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, grid.RepaintAlways, policy)

	button, err := cfg.Paint.MouseButton()
	require.NoError(t, err)
	assert.Equal(t, ebiten.MouseButtonRight, button)

	assert.Equal(t, color.RGBA{A: 0xff}, cfg.Colors.Background.RGBA)
	assert.Equal(t, color.RGBA{R: 0x80, A: 0x80}, cfg.Colors.Fill.RGBA)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "gridpaint.toml", `
stroke_width = 2.5

[window]
height = 600
title = "toml"

[grid]
cover_edges = true

[colors]
stroke = "#102030"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "toml", cfg.Window.Title)
	assert.True(t, cfg.Grid.CoverEdges)
	assert.Equal(t, float32(2.5), cfg.StrokeWidth)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.Colors.Stroke.RGBA)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		file string
		body string
		is   error
	}{
		{"unknown_format", "gridpaint.json", `{}`, ErrUnknownFormat},
		{"bad_policy", "a.yaml", "paint:\n  policy: twice\n", grid.ErrUnknownPolicy},
		{"bad_edge", "b.yaml", "grid:\n  edge_length: 0\n", ErrInvalid},
		{"bad_window", "c.toml", "[window]\nwidth = -1\n", ErrInvalid},
		{"bad_button", "d.yaml", "paint:\n  button: thumb\n", ErrInvalid},
		{"bad_color", "e.yaml", "colors:\n  fill: \"#zz0000\"\n", ErrInvalid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, c.file, c.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.is), "got %v", err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"#ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"1c1f21", color.RGBA{0x1c, 0x1f, 0x21, 0xff}, false},
		{"#00ff0000", color.RGBA{}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.err {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("S")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyS, k)

	_, err = ParseKey("NotAKey")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gridpaint.yaml", "hud: false\n")
	other := filepath.Join(dir, "other.yaml")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("hud: true\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, w.Path(), name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}

	time.Sleep(2 * debounce)
	require.NoError(t, os.WriteFile(path, []byte("hud: false\n"), 0o644))
	assert.Eventually(t, func() bool {
		changed, err := w.Poll()
		return err == nil && changed
	}, 5*time.Second, 20*time.Millisecond)
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "gridpaint.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "builtin:warm", cfg.Paint.Script)
	assert.Equal(t, "captures", cfg.Capture.Dir)
	assert.True(t, cfg.HUD)
}
