// Package xr drives the lifecycle of a cardboard display session: creating,
// starting and stopping the display and input subsystems, pushing the
// viewport orientation and widget layout to the display and tracking
// device parameters scanned from a viewer QR code.
package xr

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/gaze/widget"
)

var (
	ErrNotInitialized     = errors.New("xr: loader not initialized")
	ErrAlreadyInitialized = errors.New("xr: loader already initialized")
	ErrNotStarted         = errors.New("xr: loader not started")
	ErrAlreadyStarted     = errors.New("xr: loader already started")
)

const (
	DisplaySubsystem = "CardboardDisplay"
	InputSubsystem   = "CardboardInput"
)

type LoaderState uint8

const (
	StateUninitialized LoaderState = iota
	StateInitialized
	StateStarted
)

func (s LoaderState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateStarted:
		return "Started"
	default:
		return "Unknown"
	}
}

type Subsystem interface {
	Start() error
	Stop() error
	Destroy() error
}

type SubsystemProvider interface {
	CreateSubsystem(name string) (Subsystem, error)
}

type SubsystemProviderFunc func(name string) (Subsystem, error)

func (fn SubsystemProviderFunc) CreateSubsystem(name string) (Subsystem, error) {
	return fn(name)
}

// Display receives the parameters the native renderer needs.
type Display interface {
	SetScreenParams(layout widget.Layout)
	SetViewportOrientation(orientation ViewportOrientation)
	SetGraphicsAPI(api GraphicsAPI)

	// DeviceParamsChanged asks the display to reload the device
	// parameters on the next frame.
	DeviceParamsChanged()
}

type LoaderOptions struct {
	Provider SubsystemProvider
	Display  Display
	Logger   *slog.Logger

	GraphicsAPI GraphicsAPI
	Orientation ScreenOrientation
	Metrics     widget.Metrics
}

type namedSubsystem struct {
	name string
	Subsystem
}

// Loader is a state machine going from StateUninitialized to StateInitialized
// to StateStarted and back. It is not safe for concurrent use.
type Loader struct {
	opts   LoaderOptions
	logger *slog.Logger

	state      LoaderState
	subsystems []namedSubsystem

	layout    widget.Layout
	hasLayout bool
	viewport  ViewportOrientation
}

func NewLoader(opts LoaderOptions) *Loader {
	if opts.Provider == nil {
		panic("xr: no subsystem provider given")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{opts: opts, logger: logger}
}

func (l *Loader) State() LoaderState {
	return l.state
}

func (l *Loader) IsInitialized() bool {
	return l.state != StateUninitialized
}

func (l *Loader) IsStarted() bool {
	return l.state == StateStarted
}

// Initialize creates the display and input subsystems and pushes the initial
// graphics api, viewport orientation and widget layout to the display.
func (l *Loader) Initialize() error {
	if l.state != StateUninitialized {
		return ErrAlreadyInitialized
	}

	for _, name := range []string{DisplaySubsystem, InputSubsystem} {
		subsystem, err := l.opts.Provider.CreateSubsystem(name)
		if err != nil {
			err = fmt.Errorf("create subsystem %q: %w", name, err)
			return errors.Join(err, l.destroySubsystems())
		}

		l.subsystems = append(l.subsystems, namedSubsystem{name: name, Subsystem: subsystem})
	}

	l.setGraphicsAPI(l.opts.GraphicsAPI)
	l.SetOrientation(l.opts.Orientation)

	l.recalculate(l.opts.Metrics)

	l.state = StateInitialized

	l.logger.Info("XR loader initialized",
		slog.Int("subsystems", len(l.subsystems)),
		slog.String("viewport", l.viewport.String()),
	)

	return nil
}

// Start starts all subsystems in creation order. If one fails to start,
// the ones already started are stopped again.
func (l *Loader) Start() error {
	switch l.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateStarted:
		return ErrAlreadyStarted
	}

	for idx, subsystem := range l.subsystems {
		if err := subsystem.Start(); err != nil {
			err = fmt.Errorf("start subsystem %q: %w", subsystem.name, err)
			return errors.Join(err, stopAll(l.subsystems[:idx]))
		}
	}

	l.state = StateStarted

	l.logger.Debug("XR loader started")

	return nil
}

// Stop stops all subsystems in creation order.
func (l *Loader) Stop() error {
	if l.state != StateStarted {
		return ErrNotStarted
	}

	l.state = StateInitialized

	l.logger.Debug("XR loader stopped")

	return stopAll(l.subsystems)
}

// Deinitialize destroys all subsystems in reverse creation order.
// A started loader is stopped first.
func (l *Loader) Deinitialize() error {
	if l.state == StateUninitialized {
		return ErrNotInitialized
	}

	var errStop error
	if l.state == StateStarted {
		errStop = l.Stop()
	}

	err := errors.Join(errStop, l.destroySubsystems())

	l.state = StateUninitialized
	l.hasLayout = false

	l.logger.Debug("XR loader deinitialized")

	return err
}

func (l *Loader) destroySubsystems() error {
	var errs []error

	for _, subsystem := range slices.Backward(l.subsystems) {
		if err := subsystem.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("destroy subsystem %q: %w", subsystem.name, err))
		}
	}

	l.subsystems = nil

	return errors.Join(errs...)
}

func stopAll(subsystems []namedSubsystem) error {
	var errs []error

	for _, subsystem := range subsystems {
		if err := subsystem.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop subsystem %q: %w", subsystem.name, err))
		}
	}

	return errors.Join(errs...)
}

// SetOrientation maps the screen orientation to a viewport orientation and
// pushes it to the display. Unsupported orientations fall back to
// ViewportLandscapeLeft.
func (l *Loader) SetOrientation(orientation ScreenOrientation) ViewportOrientation {
	viewport, ok := viewportOrientationOf(orientation)
	if !ok {
		l.logger.Warn("Unsupported screen orientation, using landscape left",
			slog.String("orientation", orientation.String()))
	}

	l.viewport = viewport

	if l.opts.Display != nil {
		l.opts.Display.SetViewportOrientation(viewport)
	}

	return viewport
}

func (l *Loader) ViewportOrientation() ViewportOrientation {
	return l.viewport
}

func (l *Loader) setGraphicsAPI(api GraphicsAPI) {
	if !api.supported() {
		l.logger.Error("Graphics api not supported, use OpenGL ES 2.0, OpenGL ES 3.0 or Metal",
			slog.String("api", api.String()))
		return
	}

	if l.opts.Display != nil {
		l.opts.Display.SetGraphicsAPI(api)
	}
}

// UpdateScreenParams recomputes the widget layout if the screen or its safe
// area changed since the last call. It must be called once per frame and
// returns true if the layout was recomputed.
func (l *Loader) UpdateScreenParams(metrics widget.Metrics) bool {
	if !l.IsInitialized() {
		return false
	}

	if l.hasLayout && l.layout.Metrics == metrics {
		return false
	}

	l.recalculate(metrics)

	return true
}

func (l *Loader) recalculate(metrics widget.Metrics) {
	l.layout = metrics.Layout()
	l.hasLayout = true

	l.logger.Debug("Widget layout recalculated",
		slog.Any("safeArea", metrics.SafeArea),
		slog.Float64("dpi", metrics.DPI),
	)

	if l.opts.Display != nil {
		l.opts.Display.SetScreenParams(l.layout)
	}
}

// Layout returns the current widget layout.
func (l *Loader) Layout() (widget.Layout, bool) {
	return l.layout, l.hasLayout
}

// ClassifyTouch classifies the touch against the current widget layout.
// Touches are ignored while the loader is not started.
func (l *Loader) ClassifyTouch(touch widget.Touch) widget.TouchKind {
	if !l.IsStarted() || !l.hasLayout {
		return widget.TouchNone
	}

	return l.layout.Classify(touch)
}
