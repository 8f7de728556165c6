package system

import (
	"image/color"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/ecs/entity"
	"github.com/milk9111/gridpaint/grid"
	"github.com/milk9111/gridpaint/palette"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// newTestWorld spawns a 640x480 canvas with 32px squares.
func newTestWorld(t *testing.T, policy grid.Policy) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	g := grid.Build(grid.Centered(640, 480), 32, grid.Options{})
	_, err := entity.NewCanvas(w, g, component.Settings{
		Policy:     policy,
		Source:     palette.NewRandom(testRand()),
		Program:    "gridpaint",
		Background: color.RGBA{A: 0xff},
	})
	require.NoError(t, err)
	return w
}

func setInput(t *testing.T, w *ecs.World, input component.Input) {
	t.Helper()
	_, in, ok := ecs.First(w, component.InputComponent)
	require.True(t, ok)
	*in = input
}

func testGrid(t *testing.T, w *ecs.World) *grid.Grid {
	t.Helper()
	_, g, ok := ecs.First(w, component.GridComponent)
	require.True(t, ok)
	return g.Grid
}

func testSettings(t *testing.T, w *ecs.World) *component.Settings {
	t.Helper()
	_, s, ok := ecs.First(w, component.SettingsComponent)
	require.True(t, ok)
	return s
}
