package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/grid"
	"github.com/milk9111/gridpaint/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsDefaults(t *testing.T) {
	settings, err := NewSettings(config.Default(), "gridpaint", testRand(), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, grid.PaintOnce, settings.Policy)
	assert.Equal(t, ebiten.MouseButtonLeft, settings.Button)
	assert.Equal(t, ebiten.KeyS, settings.CaptureKey)
	assert.True(t, settings.ClipboardEnabled)
	assert.Equal(t, ebiten.KeyC, settings.ClipboardKey)
	assert.IsType(t, &palette.Random{}, settings.Source)
}

func TestNewSettingsClipboardDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.ClipboardKey = ""

	settings, err := NewSettings(cfg, "gridpaint", testRand(), discardLogger())
	require.NoError(t, err)
	assert.False(t, settings.ClipboardEnabled)
}

func TestNewSettingsScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warm.tengo")
	require.NoError(t, os.WriteFile(path, []byte("r := 200\ng := 100\nb := 0\n"), 0o644))

	cfg := config.Default()
	cfg.Paint.Script = path
	settings, err := NewSettings(cfg, "gridpaint", testRand(), discardLogger())
	require.NoError(t, err)

	c := settings.Source.Color(cp.Vector{})
	assert.Equal(t, uint8(200), c.R)
	assert.Equal(t, uint8(100), c.G)
	assert.Equal(t, uint8(0), c.B)
}

func TestNewSettingsBuiltinScript(t *testing.T) {
	cfg := config.Default()
	cfg.Paint.Script = "builtin:warm"
	settings, err := NewSettings(cfg, "gridpaint", testRand(), discardLogger())
	require.NoError(t, err)

	s, ok := settings.Source.(*palette.Script)
	require.True(t, ok)
	c, err := s.Eval(cp.Vector{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.R, uint8(180))
}

func TestNewSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.tengo")
	require.NoError(t, os.WriteFile(broken, []byte("r := ("), 0o644))

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"policy", func(c *config.Config) { c.Paint.Policy = "twice" }},
		{"button", func(c *config.Config) { c.Paint.Button = "thumb" }},
		{"capture_key", func(c *config.Config) { c.Capture.Key = "NotAKey" }},
		{"clipboard_key", func(c *config.Config) { c.Capture.ClipboardKey = "NotAKey" }},
		{"missing_script", func(c *config.Config) { c.Paint.Script = filepath.Join(dir, "missing.tengo") }},
		{"broken_script", func(c *config.Config) { c.Paint.Script = broken }},
		{"unknown_builtin", func(c *config.Config) { c.Paint.Script = "builtin:neon" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			c.mutate(&cfg)
			_, err := NewSettings(cfg, "gridpaint", testRand(), discardLogger())
			assert.Error(t, err)
		})
	}
}
