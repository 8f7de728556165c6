package system

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/gridpaint/assets"
	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/palette"
)

// NewSettings resolves a config into the runtime Settings component. program
// names capture files.
func NewSettings(cfg config.Config, program string, rng *rand.Rand, logger *log.Logger) (component.Settings, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return component.Settings{}, err
	}
	button, err := cfg.Paint.MouseButton()
	if err != nil {
		return component.Settings{}, err
	}
	captureKey, err := config.ParseKey(cfg.Capture.Key)
	if err != nil {
		return component.Settings{}, err
	}

	settings := component.Settings{
		Policy:     policy,
		Button:     button,
		CaptureKey: captureKey,
		CaptureDir: cfg.Capture.Dir,
		Program:    program,
		Background: cfg.Colors.Background.RGBA,
		HUD:        cfg.HUD,
	}

	if cfg.Capture.ClipboardKey != "" {
		key, err := config.ParseKey(cfg.Capture.ClipboardKey)
		if err != nil {
			return component.Settings{}, err
		}
		settings.ClipboardKey = key
		settings.ClipboardEnabled = true
	}

	settings.Source, err = newSource(cfg.Paint.Script, rng, logger)
	if err != nil {
		return component.Settings{}, err
	}
	return settings, nil
}

func newSource(script string, rng *rand.Rand, logger *log.Logger) (palette.Source, error) {
	if script == "" {
		return palette.NewRandom(rng), nil
	}

	var (
		src []byte
		err error
	)
	if name, ok := assets.Builtin(script); ok {
		src, err = assets.Palette(name)
	} else {
		src, err = os.ReadFile(script)
	}
	if err != nil {
		return nil, fmt.Errorf("read palette script %s: %w", script, err)
	}
	source, err := palette.NewScript(src, rng, func(err error) {
		logger.Warn("palette script failed, using random colors", "script", script, "err", err)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", script, err)
	}
	return source, nil
}
