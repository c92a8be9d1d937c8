// Command gazedemo shows gaze dwell selection in a top down view. The viewer
// sits in the center of the window and looks towards the mouse cursor.
// Looking at a green object for the gaze time clicks it, as does a click,
// a touch or the space key. The gear button simulates scanning a viewer QR
// code, the close button exits.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/config"
	"github.com/oliverbestmann/gaze/gazebiten"
	"github.com/oliverbestmann/gaze/physics"
	"github.com/oliverbestmann/gaze/scene"
	"github.com/oliverbestmann/gaze/xr"
	"github.com/pkg/profile"
)

//go:embed scene.yaml
var defaultScene []byte

func main() {
	configPath := flag.String("config", "", "path to a toml config file")
	scenePath := flag.String("scene", "", "path to a yaml scene file, a built in scene is used if empty")
	cpuProfile := flag.Bool("profile", false, "write a cpu profile to the working directory")
	flag.Parse()

	if err := run(*configPath, *scenePath, *cpuProfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, scenePath string, cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := config.Defaults()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	logger, err := cfg.Logging.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	settings := gaze.DefaultSettings().WithLogger(logger)

	// rejected values are logged and keep their defaults
	if err := cfg.Gaze.Apply(&settings); err != nil {
		logger.Warn("Config contains invalid gaze settings", slog.String("err", err.Error()))
	}

	s, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	space, err := physics.FromScene(s, scene.LayerMaskOf(cfg.Gaze.InteractionLayer))
	if err != nil {
		return err
	}

	reticle, err := gazebiten.NewReticle(settings.ReticleSegments(), gazebiten.DefaultReticleStyle())
	if err != nil {
		return err
	}

	g := &game{
		cfg:         cfg,
		logger:      logger,
		space:       space,
		interactive: physics.CategoryMask(physics.CategoryInteractive),
		reticle:     reticle,
		display:     gazebiten.NewDisplay(),
		camera:      gazebiten.NewCamera(40),
		clicks:      map[*physics.Body]int{},
	}

	g.controller = gaze.NewController(settings, space,
		gaze.WithInteractivity(g.interactive),
		gaze.WithRenderer(reticle),
		gaze.WithLogger(logger),
		gaze.WithNotifier(gaze.NotifierFunc(g.onGazeEvent)),
	)

	g.loader = xr.NewLoader(xr.LoaderOptions{
		Provider:    loggingSubsystems{logger: logger},
		Display:     g.display,
		Logger:      logger,
		GraphicsAPI: xr.GraphicsOpenGLES3,
		Orientation: xr.ScreenLandscapeLeft,
		Metrics:     g.metrics(cfg.Window.Width, cfg.Window.Height, 1),
	})

	g.scanner = &simulatedScanner{}
	g.params = xr.NewDeviceParams(g.loader, g.scanner)

	if err := g.loader.Initialize(); err != nil {
		return err
	}

	defer func() {
		if err := g.loader.Deinitialize(); err != nil {
			logger.Warn("Failed to deinitialize xr loader", slog.String("err", err.Error()))
		}
	}()

	if err := g.loader.Start(); err != nil {
		return err
	}

	if !g.params.HasDeviceParams() {
		logger.Info("No viewer paired yet, press the gear button to scan one")
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Load(bytes.NewReader(defaultScene))
	}

	return scene.LoadFile(path)
}

type loggingSubsystems struct {
	logger *slog.Logger
}

func (p loggingSubsystems) CreateSubsystem(name string) (xr.Subsystem, error) {
	p.logger.Debug("Create subsystem", slog.String("name", name))
	return loggingSubsystem{name: name, logger: p.logger}, nil
}

type loggingSubsystem struct {
	name   string
	logger *slog.Logger
}

func (s loggingSubsystem) Start() error {
	s.logger.Debug("Start subsystem", slog.String("name", s.name))
	return nil
}

func (s loggingSubsystem) Stop() error {
	s.logger.Debug("Stop subsystem", slog.String("name", s.name))
	return nil
}

func (s loggingSubsystem) Destroy() error {
	s.logger.Debug("Destroy subsystem", slog.String("name", s.name))
	return nil
}
