package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/grid"
)

var errCanvasNilGrid = errors.New("canvas: nil grid")

// NewCanvas spawns the entity that owns the grid together with the settings,
// input and status components the systems work on.
func NewCanvas(w *ecs.World, g *grid.Grid, settings component.Settings) (ecs.Entity, error) {
	if g == nil {
		return 0, errCanvasNilGrid
	}

	canvas := w.CreateEntity()
	if err := ecs.Add(w, canvas, component.GridComponent, &component.Grid{Grid: g}); err != nil {
		return 0, fmt.Errorf("canvas: add grid: %w", err)
	}
	if err := ecs.Add(w, canvas, component.SettingsComponent, &settings); err != nil {
		return 0, fmt.Errorf("canvas: add settings: %w", err)
	}
	if err := ecs.Add(w, canvas, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("canvas: add input: %w", err)
	}
	if err := ecs.Add(w, canvas, component.StatusComponent, &component.Status{}); err != nil {
		return 0, fmt.Errorf("canvas: add status: %w", err)
	}

	return canvas, nil
}
