// Package config loads gridpaint settings from YAML or TOML files and watches
// them for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/grid"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("config: unknown file format")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Window      Window  `yaml:"window" toml:"window"`
	Grid        Grid    `yaml:"grid" toml:"grid"`
	Paint       Paint   `yaml:"paint" toml:"paint"`
	Capture     Capture `yaml:"capture" toml:"capture"`
	Colors      Colors  `yaml:"colors" toml:"colors"`
	StrokeWidth float32 `yaml:"stroke_width" toml:"stroke_width"`
	HUD         bool    `yaml:"hud" toml:"hud"`
}

type Window struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type Grid struct {
	EdgeLength      float64 `yaml:"edge_length" toml:"edge_length"`
	DuplicateOrigin bool    `yaml:"duplicate_origin" toml:"duplicate_origin"`
	CoverEdges      bool    `yaml:"cover_edges" toml:"cover_edges"`
}

type Paint struct {
	Policy string `yaml:"policy" toml:"policy"`
	Button string `yaml:"button" toml:"button"`
	// Script is an optional tengo file defining r, g and b, or
	// "builtin:<name>" for an embedded palette.
	Script string `yaml:"script" toml:"script"`
}

type Capture struct {
	Key          string `yaml:"key" toml:"key"`
	ClipboardKey string `yaml:"clipboard_key" toml:"clipboard_key"`
	Dir          string `yaml:"dir" toml:"dir"`
}

type Colors struct {
	Background Color `yaml:"background" toml:"background"`
	Fill       Color `yaml:"fill" toml:"fill"`
	Stroke     Color `yaml:"stroke" toml:"stroke"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 640, Height: 480, Title: "gridpaint"},
		Grid:   Grid{EdgeLength: 32},
		Paint:  Paint{Policy: grid.PaintOnce.String(), Button: "left"},
		Capture: Capture{
			Key:          "S",
			ClipboardKey: "C",
		},
		Colors: Colors{
			Background: Color{RGBA: backgroundColor},
			Fill:       Color{RGBA: colornames.White},
			Stroke:     Color{RGBA: colornames.Black},
		},
		StrokeWidth: 1,
	}
}

// Load reads path on top of the defaults. The format is picked from the file
// extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by name.
func Decode(name string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return nil
}

// Validate checks every field that is parsed later on.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Grid.EdgeLength <= 0 {
		return fmt.Errorf("%w: edge_length %v", ErrInvalid, c.Grid.EdgeLength)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("%w: stroke_width %v", ErrInvalid, c.StrokeWidth)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Paint.MouseButton(); err != nil {
		return err
	}
	if _, err := ParseKey(c.Capture.Key); err != nil {
		return err
	}
	if c.Capture.ClipboardKey != "" {
		if _, err := ParseKey(c.Capture.ClipboardKey); err != nil {
			return err
		}
	}
	return nil
}

// Policy returns the parsed paint policy.
func (c Config) Policy() (grid.Policy, error) {
	return grid.ParsePolicy(c.Paint.Policy)
}

// GridOptions returns the builder options implied by the settings.
func (c Config) GridOptions() grid.Options {
	return grid.Options{
		DuplicateOrigin: c.Grid.DuplicateOrigin,
		CoverEdges:      c.Grid.CoverEdges,
		Fill:            c.Colors.Fill.RGBA,
		Stroke:          c.Colors.Stroke.RGBA,
		StrokeWidth:     c.StrokeWidth,
	}
}

// MouseButton maps "left", "right" and "middle" to ebiten buttons.
func (p Paint) MouseButton() (ebiten.MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(p.Button)) {
	case "", "left":
		return ebiten.MouseButtonLeft, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	default:
		return ebiten.MouseButtonLeft, fmt.Errorf("%w: mouse button %q", ErrInvalid, p.Button)
	}
}

// ParseKey resolves a key name such as "S" or "F12".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return k, fmt.Errorf("%w: key %q", ErrInvalid, name)
	}
	return k, nil
}
