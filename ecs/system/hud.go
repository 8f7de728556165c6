package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// HUDSystem folds the frame's events into the Status component and, when
// enabled, prints it in the top-left corner. It must run after every system
// that pushes events.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{}
}

func (h *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Drain()
	_, status, ok := ecs.First(w, component.StatusComponent)
	if !ok {
		return
	}

	for _, evt := range events {
		switch evt.Type {
		case ecs.EventPainted:
			status.Strokes++
		case ecs.EventCaptured:
			if data, ok := evt.Data.(ecs.CapturedEvent); ok {
				if data.Clipboard {
					status.LastCapture = "clipboard"
				} else {
					status.LastCapture = data.Path
				}
			}
		case ecs.EventReloaded:
			if msg, ok := evt.Data.(string); ok {
				status.Message = msg
			}
		}
	}

	if _, g, ok := ecs.First(w, component.GridComponent); ok && g.Grid != nil {
		status.Painted = g.Styled()
	}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok || !settings.HUD {
		return
	}
	_, status, ok := ecs.First(w, component.StatusComponent)
	if !ok {
		return
	}
	ebitenutil.DebugPrint(screen, hudText(settings, status, ebiten.ActualFPS()))
}

func hudText(settings *component.Settings, status *component.Status, fps float64) string {
	text := fmt.Sprintf("FPS: %.2f    policy: %s    painted: %d", fps, settings.Policy, status.Painted)
	if status.Paused {
		text += "    [paused]"
	}
	if status.LastCapture != "" {
		text += "\nlast capture: " + status.LastCapture
	}
	if status.Message != "" {
		text += "\n" + status.Message
	}
	return text
}
