package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// backgroundColor is the dark slate the grid is drawn on.
var backgroundColor = color.RGBA{R: 0x1c, G: 0x1f, B: 0x21, A: 0xff}

// Color is a "#rrggbb" or "#rrggbbaa" hex color in config files.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	return c.UnmarshalText([]byte(value.Value))
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a hex color with an optional leading '#'. The alpha byte
// defaults to opaque. Colors are stored premultiplied.
func ParseColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var channels [4]uint8
	channels[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, v)
		}
		channels[i] = n
	}

	nrgba := color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
