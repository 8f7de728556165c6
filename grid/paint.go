package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridpaint/palette"
)

var ErrUnknownPolicy = errors.New("grid: unknown paint policy")

// Policy decides whether a square can be painted more than once.
type Policy int

const (
	// PaintOnce colors a square the first time the pointer reaches it and
	// never again.
	PaintOnce Policy = iota
	// RepaintAlways recolors every square under the pointer on every event.
	RepaintAlways
)

func (p Policy) String() string {
	switch p {
	case PaintOnce:
		return "once"
	case RepaintAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParsePolicy accepts "once" and "always" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once", "":
		return PaintOnce, nil
	case "always":
		return RepaintAlways, nil
	default:
		return PaintOnce, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Paint recolors every square containing p with a color drawn from src, used
// for both fill and stroke. It returns the number of squares recolored.
func (g *Grid) Paint(p cp.Vector, policy Policy, src palette.Source) int {
	if g == nil || src == nil {
		return 0
	}

	painted := 0
	for i := range g.Squares {
		sq := &g.Squares[i]
		if !sq.Contains(p) {
			continue
		}
		if policy == PaintOnce && sq.Styled {
			continue
		}

		c := src.Color(sq.Center)
		sq.Fill = c
		sq.Stroke = c
		sq.Styled = true
		painted++
	}
	return painted
}
