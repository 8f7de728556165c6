// Package grid builds the square tiling of the viewport and paints the squares
// under the pointer.
//
// World space is y-up with the origin at the center of the window, so a
// 640x480 window spans x in [-320, 320] and y in [-240, 240].
package grid

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// Viewport is the visible drawing area in world space. Left < Right and
// Bottom < Top.
type Viewport struct {
	Left, Right float64
	Top, Bottom float64
}

// Centered returns the viewport of a width x height window centered on the
// origin.
func Centered(width, height float64) Viewport {
	return Viewport{
		Left:   -width / 2,
		Right:  width / 2,
		Top:    height / 2,
		Bottom: -height / 2,
	}
}

func (v Viewport) Width() float64  { return v.Right - v.Left }
func (v Viewport) Height() float64 { return v.Top - v.Bottom }

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width() <= 0 || v.Height() <= 0
}

// ToWorld converts a screen position (top-left origin, y down) to world space.
func (v Viewport) ToWorld(sx, sy float64) cp.Vector {
	return cp.Vector{X: v.Left + sx, Y: v.Top - sy}
}

// ToScreen converts a world position to screen space.
func (v Viewport) ToScreen(p cp.Vector) (float64, float64) {
	return p.X - v.Left, v.Top - p.Y
}

// Square is one tile of the grid.
type Square struct {
	Center      cp.Vector
	Size        float64
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
	Styled      bool
}

// Bounds returns the axis-aligned bounds of the square in world space.
func (s *Square) Bounds() cp.BB {
	half := s.Size / 2
	return cp.BB{
		L: s.Center.X - half,
		B: s.Center.Y - half,
		R: s.Center.X + half,
		T: s.Center.Y + half,
	}
}

// Contains reports whether p lies inside the square. Edges are inclusive, so a
// point on a shared edge hits both neighbours.
func (s *Square) Contains(p cp.Vector) bool {
	return s.Bounds().ContainsVect(p)
}

// Options tune Build. The zero value is the plain tiling with the origin
// row and column emitted once.
type Options struct {
	// DuplicateOrigin emits the zero offset twice on each axis, stacking a
	// second row and column of squares on top of the first at the origin.
	DuplicateOrigin bool
	// CoverEdges keeps stepping outward while the near edge of the next
	// square is still inside the viewport, so the grid covers it completely.
	CoverEdges bool

	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float32
}

// Grid is the ordered set of squares tiling a viewport.
type Grid struct {
	Viewport Viewport
	Edge     float64
	Squares  []Square
}

// Build tiles viewport with squares of side edge. Squares are emitted x-major:
// every y for the first x offset, then the next x offset. Offsets are
// generated 0, e, 2e, ... towards the positive edge and then 0, -e, -2e, ...
// towards the negative one.
func Build(viewport Viewport, edge float64, opts Options) *Grid {
	g := &Grid{Viewport: viewport, Edge: edge}
	if edge <= 0 || viewport.Empty() {
		return g
	}

	fill := rgba(opts.Fill, colornames.White)
	stroke := rgba(opts.Stroke, colornames.Black)
	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}

	xs := offsets(viewport.Left, viewport.Right, edge, opts)
	ys := offsets(viewport.Bottom, viewport.Top, edge, opts)

	g.Squares = make([]Square, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			g.Squares = append(g.Squares, Square{
				Center:      cp.Vector{X: x, Y: y},
				Size:        edge,
				Fill:        fill,
				Stroke:      stroke,
				StrokeWidth: strokeWidth,
			})
		}
	}
	return g
}

// offsets returns 0, e, 2e, ... below hi followed by 0, -e, -2e, ... above lo.
func offsets(lo, hi, edge float64, opts Options) []float64 {
	slack := 0.0
	if opts.CoverEdges {
		slack = edge / 2
	}

	var out []float64
	for i := 0; ; i++ {
		f := float64(i) * edge
		if f-slack >= hi {
			break
		}
		out = append(out, f)
	}

	start := 1
	if opts.DuplicateOrigin {
		start = 0
	}
	for i := start; ; i++ {
		f := -float64(i) * edge
		if f+slack <= lo {
			break
		}
		out = append(out, f)
	}
	return out
}

// SquaresAt returns the indices of every square containing p, in grid order.
func (g *Grid) SquaresAt(p cp.Vector) []int {
	var out []int
	for i := range g.Squares {
		if g.Squares[i].Contains(p) {
			out = append(out, i)
		}
	}
	return out
}

// Styled returns how many squares have been painted at least once.
func (g *Grid) Styled() int {
	n := 0
	for i := range g.Squares {
		if g.Squares[i].Styled {
			n++
		}
	}
	return n
}

func rgba(c color.Color, fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
