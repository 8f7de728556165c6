package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDSystemFoldsEvents(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	g := testGrid(t, w)
	g.Paint(cp.Vector{X: 5, Y: 5}, grid.PaintOnce, testSettings(t, w).Source)

	w.Events().Push(ecs.Event{Type: ecs.EventPainted, Data: ecs.PaintedEvent{Count: 1}})
	w.Events().Push(ecs.Event{Type: ecs.EventCaptured, Data: ecs.CapturedEvent{Path: "shots/a.png"}})
	w.Events().Push(ecs.Event{Type: ecs.EventReloaded, Data: "settings reloaded"})

	NewHUDSystem().Update(w)

	_, status, ok := ecs.First(w, component.StatusComponent)
	require.True(t, ok)
	assert.Equal(t, 1, status.Painted)
	assert.Equal(t, 1, status.Strokes)
	assert.Equal(t, "shots/a.png", status.LastCapture)
	assert.Equal(t, "settings reloaded", status.Message)
	assert.Zero(t, w.Events().Len())

	w.Events().Push(ecs.Event{Type: ecs.EventCaptured, Data: ecs.CapturedEvent{Clipboard: true}})
	NewHUDSystem().Update(w)
	assert.Equal(t, "clipboard", status.LastCapture)
}

func TestHUDText(t *testing.T) {
	settings := &component.Settings{Policy: grid.RepaintAlways}

	text := hudText(settings, &component.Status{Painted: 7}, 59.94)
	assert.Equal(t, "FPS: 59.94    policy: always    painted: 7", text)

	text = hudText(settings, &component.Status{LastCapture: "x.png", Message: "settings reloaded"}, 60)
	assert.Contains(t, text, "\nlast capture: x.png")
	assert.Contains(t, text, "\nsettings reloaded")

	text = hudText(settings, &component.Status{Paused: true}, 60)
	assert.Contains(t, text, "[paused]")
}
