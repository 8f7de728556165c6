package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// RenderSystem draws every square as a filled quad with a stroked outline.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, target *ebiten.Image) {
	if w == nil || target == nil {
		return
	}

	if _, settings, ok := ecs.First(w, component.SettingsComponent); ok {
		target.Fill(settings.Background)
	}

	_, g, ok := ecs.First(w, component.GridComponent)
	if !ok || g.Grid == nil {
		return
	}

	for i := range g.Squares {
		sq := &g.Squares[i]
		half := sq.Size / 2
		sx, sy := g.Viewport.ToScreen(cp.Vector{X: sq.Center.X - half, Y: sq.Center.Y + half})
		x, y, size := float32(sx), float32(sy), float32(sq.Size)

		vector.DrawFilledRect(target, x, y, size, size, sq.Fill, false)
		if sq.StrokeWidth > 0 {
			vector.StrokeRect(target, x, y, size, size, sq.StrokeWidth, sq.Stroke, false)
		}
	}
}
