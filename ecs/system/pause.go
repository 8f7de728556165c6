package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// PauseSystem toggles the pause menu on Escape. While paused, painting stops
// and the menu owns the pointer. Quit ends the game loop cleanly.
type PauseSystem struct {
	width  int
	height int
	logger *log.Logger

	build func(bindings []string, onResume, onQuit func()) *ebitenui.UI
	ui    *ebitenui.UI

	resumeClicked bool
	quitClicked   bool
}

func NewPauseSystem(width, height int, logger *log.Logger) *PauseSystem {
	p := &PauseSystem{width: width, height: height, logger: logger}
	p.build = func(bindings []string, onResume, onQuit func()) *ebitenui.UI {
		return newPauseUI(p.width, p.height, bindings, onResume, onQuit)
	}
	return p
}

func (p *PauseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, status, ok := ecs.First(w, component.StatusComponent)
	if !ok {
		return
	}
	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok {
		return
	}

	if p.quitClicked {
		p.logger.Info("quit from pause menu")
		// Termination makes ebiten.RunGame return nil.
		w.Fail(ebiten.Termination)
		return
	}

	toggle := p.resumeClicked && status.Paused
	p.resumeClicked = false
	if _, input, ok := ecs.First(w, component.InputComponent); ok && input.PausePressed {
		toggle = !toggle
	}
	if toggle {
		p.setPaused(status, settings, !status.Paused)
	}

	if status.Paused && p.ui != nil {
		p.ui.Update()
	}
}

func (p *PauseSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if p.ui == nil {
		return
	}
	if _, status, ok := ecs.First(w, component.StatusComponent); ok && status.Paused {
		p.ui.Draw(screen)
	}
}

func (p *PauseSystem) setPaused(status *component.Status, settings *component.Settings, paused bool) {
	status.Paused = paused
	if !paused {
		p.ui = nil
		p.logger.Debug("resumed")
		return
	}
	// Rebuilt on every open so reloaded key bindings show up.
	p.ui = p.build(pauseBindings(settings),
		func() { p.resumeClicked = true },
		func() { p.quitClicked = true },
	)
	p.logger.Debug("paused")
}

func pauseBindings(s *component.Settings) []string {
	lines := []string{
		fmt.Sprintf("Hold %s mouse button: paint (%s)", buttonName(s.Button), s.Policy),
		fmt.Sprintf("%s: save PNG", s.CaptureKey),
	}
	if s.ClipboardEnabled {
		lines = append(lines, fmt.Sprintf("%s: copy to clipboard", s.ClipboardKey))
	}
	return append(lines,
		fmt.Sprintf("%s: reload config", reloadKey),
		fmt.Sprintf("%s: pause / resume", pauseKey),
	)
}

func buttonName(b ebiten.MouseButton) string {
	switch b {
	case ebiten.MouseButtonRight:
		return "right"
	case ebiten.MouseButtonMiddle:
		return "middle"
	default:
		return "left"
	}
}
