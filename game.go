package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/capture"
	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/entity"
	"github.com/milk9111/gridpaint/ecs/system"
	"github.com/milk9111/gridpaint/grid"
	"github.com/milk9111/gridpaint/palette"
)

// Game owns the world and drives it from ebiten's Update and Draw.
type Game struct {
	width  int
	height int

	world   *ecs.World
	systems *ecs.Scheduler
	canvas  ecs.Pass
	overlay ecs.Pass
	frame   *ebiten.Image

	watcher *config.Watcher
}

// NewGame builds the grid for cfg and wires the systems. load re-reads the
// settings on reload; it is nil when no config file was given.
func NewGame(cfg config.Config, load func() (config.Config, error), watcher *config.Watcher, logger *log.Logger) (*Game, error) {
	rng := palette.NewRand()

	settings, err := system.NewSettings(cfg, capture.ProgramName(), rng, logger)
	if err != nil {
		return nil, err
	}

	viewport := grid.Centered(float64(cfg.Window.Width), float64(cfg.Window.Height))
	g := grid.Build(viewport, cfg.Grid.EdgeLength, cfg.GridOptions())
	logger.Info("grid built",
		"squares", len(g.Squares),
		"edge", cfg.Grid.EdgeLength,
		"policy", settings.Policy,
		"duplicate_origin", cfg.Grid.DuplicateOrigin,
		"cover_edges", cfg.Grid.CoverEdges,
	)

	w := ecs.NewWorld()
	if _, err := entity.NewCanvas(w, g, settings); err != nil {
		return nil, err
	}

	var poller system.Poller
	if watcher != nil {
		poller = watcher
	}

	captureSystem := system.NewCaptureSystem(logger, rng)
	hud := system.NewHUDSystem()
	pause := system.NewPauseSystem(cfg.Window.Width, cfg.Window.Height, logger)

	return &Game{
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		world:  w,
		systems: ecs.NewScheduler(
			system.NewInputSystem(),
			pause,
			system.NewReloadSystem(load, poller, logger, rng),
			system.NewPaintSystem(logger),
			captureSystem,
			hud,
		),
		canvas:  ecs.Pass{system.NewRenderSystem(), captureSystem},
		overlay: ecs.Pass{hud, pause},
		watcher: watcher,
	}, nil
}

func (g *Game) Update() error {
	if err := g.world.Err(); err != nil {
		return err
	}
	g.systems.Update(g.world)
	return g.world.Err()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.canvas.Draw(g.world, g.frame)
	screen.DrawImage(g.frame, nil)
	g.overlay.Draw(g.world, screen)
}

// Layout keeps the logical screen at the startup size; the grid is never
// re-tiled when the window is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
