package entity

import (
	"testing"

	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas(t *testing.T) {
	w := ecs.NewWorld()
	g := grid.Build(grid.Centered(640, 480), 32, grid.Options{})

	e, err := NewCanvas(w, g, component.Settings{Program: "gridpaint"})
	require.NoError(t, err)
	assert.True(t, w.IsAlive(e))

	got, ok := ecs.Get(w, e, component.GridComponent)
	require.True(t, ok)
	assert.Same(t, g, got.Grid)

	settings, ok := ecs.Get(w, e, component.SettingsComponent)
	require.True(t, ok)
	assert.Equal(t, "gridpaint", settings.Program)

	assert.True(t, ecs.Has(w, e, component.InputComponent))
	assert.True(t, ecs.Has(w, e, component.StatusComponent))
}

func TestNewCanvasNilGrid(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewCanvas(w, nil, component.Settings{})
	assert.ErrorIs(t, err, errCanvasNilGrid)
	assert.Empty(t, w.Entities())
}
