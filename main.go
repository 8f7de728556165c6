package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/config"
	"github.com/spf13/cobra"
)

type options struct {
	configPath      string
	width           int
	height          int
	edge            float64
	policy          string
	script          string
	duplicateOrigin bool
	coverEdges      bool
	hud             bool
	verbose         bool
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd binds the command line flags to opts.
func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridpaint",
		Short: "Paint a grid of squares by dragging the mouse over it",
		Long: `gridpaint tiles a window with squares and gives each square a random
color when the pointer passes over it while the mouse button is held.
Press S to save the frame as a PNG, C to copy it to the clipboard and F5 to
reload the config file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML settings file, watched for changes")
	flags.IntVar(&opts.width, "width", 0, "window width in pixels")
	flags.IntVar(&opts.height, "height", 0, "window height in pixels")
	flags.Float64VarP(&opts.edge, "edge", "e", 0, "square edge length in pixels")
	flags.StringVarP(&opts.policy, "policy", "p", "", "paint policy: once or always")
	flags.StringVar(&opts.script, "script", "", "tengo palette script defining r, g and b, or builtin:<name>")
	flags.BoolVar(&opts.duplicateOrigin, "duplicate-origin", false, "emit the origin row and column twice")
	flags.BoolVar(&opts.coverEdges, "cover-edges", false, "extend the grid until it covers the whole window")
	flags.BoolVar(&opts.hud, "hud", false, "show FPS and paint counters")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	load := func() (config.Config, error) {
		return loadConfig(cmd, opts)
	}
	cfg, err := load()
	if err != nil {
		logger.Error("invalid settings", "err", err)
		return err
	}

	var (
		reload  func() (config.Config, error)
		watcher *config.Watcher
	)
	if opts.configPath != "" {
		reload = load
		watcher, err = config.NewWatcher(opts.configPath)
		if err != nil {
			logger.Warn("config hot reload disabled", "path", opts.configPath, "err", err)
			watcher = nil
		}
	}

	game, err := NewGame(cfg, reload, watcher, logger)
	if err != nil {
		logger.Error("start", "err", err)
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}

// loadConfig reads the settings file, if any, and applies the flags the user
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if flags.Changed("edge") {
		cfg.Grid.EdgeLength = opts.edge
	}
	if flags.Changed("policy") {
		cfg.Paint.Policy = opts.policy
	}
	if flags.Changed("script") {
		cfg.Paint.Script = opts.script
	}
	if flags.Changed("duplicate-origin") {
		cfg.Grid.DuplicateOrigin = opts.duplicateOrigin
	}
	if flags.Changed("cover-edges") {
		cfg.Grid.CoverEdges = opts.coverEdges
	}
	if flags.Changed("hud") {
		cfg.HUD = opts.hud
	}

	return cfg, cfg.Validate()
}
