package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// PaintSystem recolors the squares under the pointer while the paint button
// is held.
type PaintSystem struct {
	logger *log.Logger
}

func NewPaintSystem(logger *log.Logger) *PaintSystem {
	return &PaintSystem{logger: logger}
}

func (p *PaintSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, input, ok := ecs.First(w, component.InputComponent)
	if !ok || !input.ButtonDown || !input.HasCursor {
		return
	}
	if _, status, ok := ecs.First(w, component.StatusComponent); ok && status.Paused {
		return
	}
	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok {
		return
	}
	_, g, ok := ecs.First(w, component.GridComponent)
	if !ok || g.Grid == nil {
		return
	}

	pos := g.Viewport.ToWorld(input.CursorX, input.CursorY)
	n := g.Paint(pos, settings.Policy, settings.Source)
	if n == 0 {
		return
	}

	w.Events().Push(ecs.Event{Type: ecs.EventPainted, Data: ecs.PaintedEvent{Count: n}})
	if p.logger != nil {
		p.logger.Debug("painted", "squares", n, "x", pos.X, "y", pos.Y, "policy", settings.Policy)
	}
}
