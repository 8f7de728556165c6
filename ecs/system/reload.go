package system

import (
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/gridpaint/config"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

var errNoSettings = errors.New("reload: no settings in world")

// Poller reports whether the watched config file changed.
type Poller interface {
	Poll() (bool, error)
}

// ReloadSystem re-reads the config file when it changes on disk or the reload
// key is pressed, and re-applies the presentation settings. The grid is never
// re-tiled: window size and edge length changes take effect on next start.
type ReloadSystem struct {
	load    func() (config.Config, error)
	watcher Poller
	logger  *log.Logger
	rng     *rand.Rand
}

// NewReloadSystem returns a reload system. A nil load disables reloading;
// watcher may be nil when only the reload key should trigger it.
func NewReloadSystem(load func() (config.Config, error), watcher Poller, logger *log.Logger, rng *rand.Rand) *ReloadSystem {
	return &ReloadSystem{load: load, watcher: watcher, logger: logger, rng: rng}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if w == nil || r.load == nil {
		return
	}

	if r.watcher != nil {
		changed, err := r.watcher.Poll()
		if err != nil {
			r.logger.Warn("config watcher error", "err", err)
		}
		if changed {
			r.request(w, "config file changed")
		}
	}
	if _, input, ok := ecs.First(w, component.InputComponent); ok && input.ReloadPressed {
		r.request(w, "reload key pressed")
	}

	e, req, ok := ecs.First(w, component.ReloadRequestComponent)
	if !ok {
		return
	}
	defer w.DestroyEntity(e)

	if err := r.apply(w); err != nil {
		r.logger.Error("reload failed, keeping previous settings", "reason", req.Reason, "err", err)
		w.Events().Push(ecs.Event{Type: ecs.EventReloaded, Data: "reload failed: " + err.Error()})
		return
	}
	r.logger.Info("settings reloaded", "reason", req.Reason)
	w.Events().Push(ecs.Event{Type: ecs.EventReloaded, Data: "settings reloaded"})
}

func (r *ReloadSystem) request(w *ecs.World, reason string) {
	if _, _, ok := ecs.First(w, component.ReloadRequestComponent); ok {
		return
	}
	if err := ecs.Add(w, w.CreateEntity(), component.ReloadRequestComponent, &component.ReloadRequest{Reason: reason}); err != nil {
		r.logger.Error("queue reload", "err", err)
	}
}

func (r *ReloadSystem) apply(w *ecs.World) error {
	cfg, err := r.load()
	if err != nil {
		return err
	}

	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok {
		return errNoSettings
	}
	next, err := NewSettings(cfg, settings.Program, r.rng, r.logger)
	if err != nil {
		return err
	}
	*settings = next

	_, g, ok := ecs.First(w, component.GridComponent)
	if !ok || g.Grid == nil {
		return nil
	}
	if cfg.Grid.EdgeLength != g.Edge {
		r.logger.Warn("edge_length change ignored until restart", "current", g.Edge, "configured", cfg.Grid.EdgeLength)
	}

	strokeWidth := cfg.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	for i := range g.Squares {
		sq := &g.Squares[i]
		if sq.Styled {
			continue
		}
		sq.Fill = cfg.Colors.Fill.RGBA
		sq.Stroke = cfg.Colors.Stroke.RGBA
		sq.StrokeWidth = strokeWidth
	}
	return nil
}
