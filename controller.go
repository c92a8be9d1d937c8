package gaze

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/oliverbestmann/gaze/gm"
)

// Input is what the frame loop hands to the Controller once per frame.
type Input struct {
	// Ray is the pointer ray, usually the forward direction of the head pose.
	Ray gm.Ray

	// Delta is the time elapsed since the previous tick.
	Delta time.Duration

	// Trigger is set on the frame a discrete click happened,
	// e.g. a screen touch or a button press.
	Trigger bool
}

// Output is the result of a single Tick.
type Output struct {
	State DwellState

	// Target is the currently gazed at object, or nil.
	Target      Target
	Interactive bool

	Hit    Hit
	HasHit bool

	Reticle ReticleParams

	// HoverProgress goes from 0 to 1 while hovering.
	HoverProgress float64

	// ClickProgress goes from 0 to 1 during the click feedback window.
	ClickProgress float64
}

type Option func(c *Controller)

// WithNotifier sets the receiver of Enter, Exit and Click events.
// Defaults to a Dispatcher. A nil notifier keeps the default.
func WithNotifier(notifier Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithInteractivity sets the predicate that decides which targets
// take part in gaze interaction. Defaults to AlwaysInteractive.
// A nil predicate keeps the default.
func WithInteractivity(interactivity Interactivity) Option {
	return func(c *Controller) {
		if interactivity != nil {
			c.interactivity = interactivity
		}
	}
}

// WithRenderer sets a sink that receives the reticle parameters every tick.
func WithRenderer(renderer ReticleRenderer) Option {
	return func(c *Controller) {
		c.renderer = renderer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller tracks the gazed at target, runs dwell selection and drives the
// reticle animation. It needs to be ticked once per frame and is not safe for
// concurrent use.
type Controller struct {
	settings Settings

	raycaster     Raycaster
	interactivity Interactivity
	notifier      Notifier
	renderer      ReticleRenderer
	logger        *slog.Logger

	target      Target
	interactive bool
	state       DwellState

	// dwell timer of the current hover session
	hover Timer

	// click feedback window
	feedback Timer

	reticle reticle
}

func NewController(settings Settings, raycaster Raycaster, options ...Option) *Controller {
	if raycaster == nil {
		panic("Controller needs a Raycaster")
	}

	c := &Controller{
		settings:      settings,
		raycaster:     raycaster,
		interactivity: AlwaysInteractive,
		notifier:      Dispatcher{},
		logger:        slog.Default(),
	}

	for _, option := range options {
		option(c)
	}

	if c.settings.logger == nil {
		c.settings.logger = c.logger
	}

	c.reticle.setAngles(&c.settings, false)
	c.reticle.distance = c.settings.MaxDistance()

	return c
}

// Settings gives access to the live settings. Changes apply from the next tick,
// a changed gaze time from the next hover session.
func (c *Controller) Settings() *Settings {
	return &c.settings
}

func (c *Controller) State() DwellState {
	return c.state
}

func (c *Controller) Target() Target {
	return c.target
}

// Tick advances the controller by one frame.
func (c *Controller) Tick(input Input) Output {
	c.advanceFeedback(input.Delta)

	hit, ok := c.raycaster.Raycast(input.Ray, c.settings.MaxDistance())
	if ok && hit.Target == nil {
		ok = false
	}

	if !ok {
		hit = Hit{}
	}

	c.track(hit, ok)
	c.dwell(hit, input.Trigger)

	c.reticle.setDistance(&c.settings, hit, ok)
	c.reticle.setAngles(&c.settings, c.state.grown())
	c.reticle.update(input.Delta, c.settings.GrowthSpeed())

	params := c.reticle.params()
	if c.renderer != nil {
		c.renderer.SetReticleParams(params)
	}

	output := Output{
		State:       c.state,
		Target:      c.target,
		Interactive: c.interactive,
		Hit:         hit,
		HasHit:      ok,
		Reticle:     params,
	}

	switch c.state {
	case DwellHovering:
		output.HoverProgress = c.hover.Fraction()
	case DwellClicked:
		output.ClickProgress = c.feedback.Fraction()
	}

	return output
}

// Release lets go of the current target, as if nothing was hit anymore.
// An Exit event is emitted if the target was interactive.
func (c *Controller) Release() {
	c.track(Hit{}, false)
}

// advanceFeedback steps the running feedback sequence. Only the sequence
// belonging to the current state is advanced.
func (c *Controller) advanceFeedback(delta time.Duration) {
	switch c.state {
	case DwellHovering:
		c.hover.Tick(delta)
	case DwellClicked:
		c.feedback.Tick(delta)
	}
}

// track updates the gazed at target. Exit of the previous target is always
// emitted before Enter of the next one.
func (c *Controller) track(hit Hit, ok bool) {
	var target Target
	var interactive bool

	if ok {
		target = hit.Target
		interactive = c.interactivity.IsInteractive(target)
	}

	if sameTarget(target, c.target) && interactive == c.interactive {
		return
	}

	if c.interactive {
		c.exit()
	}

	c.target = target
	c.interactive = interactive

	if interactive {
		c.enter(hit)
	}
}

// sameTarget compares two targets with ==. Values that do not support ==,
// like structs holding a slice, are compared by their contents instead.
func sameTarget(a, b Target) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}

	if va.Type() != vb.Type() {
		return false
	}

	if !va.Comparable() || !vb.Comparable() {
		return reflect.DeepEqual(a, b)
	}

	return a == b
}

func (c *Controller) exit() {
	c.logger.Debug("Gaze exit", slog.Any("target", c.target))

	// cancel any running hover or click feedback
	c.state = DwellIdle
	c.hover.Reset()
	c.feedback.Reset()

	c.notifier.Notify(Event{Kind: EventExit, Target: c.target})
}

func (c *Controller) enter(hit Hit) {
	c.logger.Debug("Gaze enter",
		slog.Any("target", c.target),
		slog.Float64("distance", hit.Distance))

	c.state = DwellHovering
	c.hover = NewTimer(c.settings.GazeTime())

	c.notifier.Notify(Event{Kind: EventEnter, Target: c.target, Hit: hit})
}

func (c *Controller) dwell(hit Hit, trigger bool) {
	switch c.state {
	case DwellHovering:
		if c.hover.Finished() || trigger {
			c.click(hit)
		}

	case DwellClicked:
		switch {
		case trigger:
			// a new click restarts the feedback window
			c.click(hit)

		case c.feedback.Finished():
			c.state = DwellIdle
		}

	case DwellIdle:
		if trigger && c.interactive {
			c.click(hit)
		}
	}
}

func (c *Controller) click(hit Hit) {
	c.logger.Debug("Gaze click", slog.Any("target", c.target))

	c.state = DwellClicked
	c.hover.Reset()
	c.feedback = NewTimer(c.settings.ClickFeedbackDuration())

	c.notifier.Notify(Event{Kind: EventClick, Target: c.target, Hit: hit})
}
