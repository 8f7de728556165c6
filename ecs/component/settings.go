package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/grid"
	"github.com/milk9111/gridpaint/palette"
)

// Settings is the presentation state that can change while running. Grid
// geometry is not part of it.
type Settings struct {
	Policy       grid.Policy
	Source       palette.Source
	Button       ebiten.MouseButton
	CaptureKey   ebiten.Key
	ClipboardKey ebiten.Key
	// ClipboardEnabled is false when no clipboard key is configured.
	ClipboardEnabled bool
	CaptureDir       string
	Program          string
	Background       color.RGBA
	HUD              bool
}

var SettingsComponent = NewComponent[Settings]()
