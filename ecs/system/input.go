package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

const (
	reloadKey = ebiten.KeyF5
	pauseKey  = ebiten.KeyEscape
)

type InputSystem struct {
	poll func(s *component.Settings) component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{poll: pollEbiten}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok {
		return
	}
	state := i.poll(settings)

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		*input = state
	})
}

func pollEbiten(s *component.Settings) component.Input {
	x, y := ebiten.CursorPosition()
	input := component.Input{
		CursorX:        float64(x),
		CursorY:        float64(y),
		HasCursor:      ebiten.IsFocused(),
		ButtonDown:     ebiten.IsMouseButtonPressed(s.Button),
		CapturePressed: inpututil.IsKeyJustPressed(s.CaptureKey),
		ReloadPressed:  inpututil.IsKeyJustPressed(reloadKey),
		PausePressed:   inpututil.IsKeyJustPressed(pauseKey),
	}
	if s.ClipboardEnabled {
		input.ClipboardPressed = inpututil.IsKeyJustPressed(s.ClipboardKey)
	}

	// A finger on the screen paints like the held button.
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		input.CursorX = float64(tx)
		input.CursorY = float64(ty)
		input.HasCursor = true
		input.ButtonDown = true
	}
	return input
}
