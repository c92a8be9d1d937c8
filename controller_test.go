package gaze

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/oliverbestmann/gaze/gm"
	"github.com/stretchr/testify/require"
)

type object struct {
	name        string
	interactive bool
}

// scriptedRaycaster returns whatever hit is currently set, regardless of the ray.
type scriptedRaycaster struct {
	target   *object
	distance float64
}

func (r *scriptedRaycaster) Raycast(ray gm.Ray, maxDistance float64) (Hit, bool) {
	if r.target == nil || r.distance > maxDistance {
		return Hit{}, false
	}

	return Hit{Target: r.target, Distance: r.distance, Point: ray.At(r.distance)}, true
}

type recordedEvent struct {
	Frame  int
	Kind   EventKind
	Target string
}

type recorder struct {
	frame  int
	events []recordedEvent
}

func (r *recorder) Notify(event Event) {
	r.events = append(r.events, recordedEvent{
		Frame:  r.frame,
		Kind:   event.Kind,
		Target: event.Target.(*object).name,
	})
}

func (r *recorder) count(kind EventKind) int {
	var n int
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}

	return n
}

var objectInteractivity = InteractivityFunc(func(target Target) bool {
	obj, ok := target.(*object)
	return ok && obj.interactive
})

type harness struct {
	t          *testing.T
	raycaster  *scriptedRaycaster
	recorder   *recorder
	controller *Controller
}

func newHarness(t *testing.T, settings Settings) *harness {
	h := &harness{
		t:         t,
		raycaster: &scriptedRaycaster{distance: 2},
		recorder:  &recorder{},
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	h.controller = NewController(settings, h.raycaster,
		WithNotifier(h.recorder),
		WithInteractivity(objectInteractivity),
		WithLogger(quiet),
	)

	return h
}

func (h *harness) tick(delta time.Duration, trigger bool) Output {
	out := h.controller.Tick(Input{
		Ray:     forwardRay(),
		Delta:   delta,
		Trigger: trigger,
	})

	h.recorder.frame++
	return out
}

func forwardRay() gm.Ray {
	return gm.Ray{Direction: gm.Vec3Forward}
}

func TestController_DwellScenario(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	target := &object{name: "T", interactive: true}
	h.raycaster.target = target

	const dt = 500 * time.Millisecond

	var states []DwellState
	for range 8 {
		states = append(states, h.tick(dt, false).State)
	}

	require.Equal(t, []recordedEvent{
		{Frame: 0, Kind: EventEnter, Target: "T"},
		{Frame: 4, Kind: EventClick, Target: "T"},
	}, h.recorder.events)

	require.Equal(t, []DwellState{
		DwellHovering, DwellHovering, DwellHovering, DwellHovering,
		// clicked at frame 4, feedback lasts one second
		DwellClicked, DwellClicked,
		DwellIdle, DwellIdle,
	}, states)
}

func TestController_NonInteractiveTarget(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	h.raycaster.target = &object{name: "U"}

	for range 20 {
		out := h.tick(250*time.Millisecond, true)
		require.Equal(t, DwellIdle, out.State)
		require.False(t, out.Interactive)
	}

	require.Empty(t, h.recorder.events)
}

func TestController_TriggerClicksImmediately(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	h.raycaster.target = &object{name: "T", interactive: true}

	h.tick(16*time.Millisecond, false)
	out := h.tick(16*time.Millisecond, true)

	require.Equal(t, DwellClicked, out.State)
	require.Equal(t, []recordedEvent{
		{Frame: 0, Kind: EventEnter, Target: "T"},
		{Frame: 1, Kind: EventClick, Target: "T"},
	}, h.recorder.events)
}

func TestController_LosingTargetCancelsClick(t *testing.T) {
	t.Run("no hit", func(t *testing.T) {
		h := newHarness(t, DefaultSettings())
		h.raycaster.target = &object{name: "T", interactive: true}

		h.tick(time.Second, false)
		h.tick(900*time.Millisecond, false)

		h.raycaster.target = nil
		out := h.tick(time.Second, false)
		require.Equal(t, DwellIdle, out.State)
		require.Nil(t, out.Target)

		for range 10 {
			h.tick(time.Second, false)
		}

		require.Zero(t, h.recorder.count(EventClick))
		require.Equal(t, 1, h.recorder.count(EventExit))
	})

	t.Run("becomes non interactive", func(t *testing.T) {
		h := newHarness(t, DefaultSettings())

		target := &object{name: "T", interactive: true}
		h.raycaster.target = target

		h.tick(time.Second, false)

		target.interactive = false
		out := h.tick(time.Second, false)
		require.Equal(t, DwellIdle, out.State)

		for range 10 {
			h.tick(time.Second, false)
		}

		require.Equal(t, []recordedEvent{
			{Frame: 0, Kind: EventEnter, Target: "T"},
			{Frame: 1, Kind: EventExit, Target: "T"},
		}, h.recorder.events)
	})

	t.Run("during click feedback", func(t *testing.T) {
		h := newHarness(t, DefaultSettings())
		h.raycaster.target = &object{name: "T", interactive: true}

		h.tick(0, true)
		require.Equal(t, DwellClicked, h.controller.State())

		h.raycaster.target = nil
		out := h.tick(100*time.Millisecond, false)
		require.Equal(t, DwellIdle, out.State)
		require.Zero(t, out.ClickProgress)
	})
}

func TestController_ExitBeforeEnter(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	a := &object{name: "A", interactive: true}
	b := &object{name: "B", interactive: true}
	u := &object{name: "U"}

	h.raycaster.target = a
	h.tick(100*time.Millisecond, false)

	h.raycaster.target = b
	h.tick(100*time.Millisecond, false)

	// switching to a non interactive object only exits b
	h.raycaster.target = u
	h.tick(100*time.Millisecond, false)

	h.raycaster.target = a
	h.tick(100*time.Millisecond, false)

	require.Equal(t, []recordedEvent{
		{Frame: 0, Kind: EventEnter, Target: "A"},
		{Frame: 1, Kind: EventExit, Target: "A"},
		{Frame: 1, Kind: EventEnter, Target: "B"},
		{Frame: 2, Kind: EventExit, Target: "B"},
		{Frame: 3, Kind: EventEnter, Target: "A"},
	}, h.recorder.events)
}

func TestController_NoDuplicateExits(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	a := &object{name: "A", interactive: true}
	b := &object{name: "B"}

	// a deterministic but irregular sequence of raycast results
	sequence := []*object{a, a, nil, nil, a, b, b, a, nil, a, a, a, b, nil, nil, a}

	for idx := range 200 {
		h.raycaster.target = sequence[(idx*7)%len(sequence)]
		h.tick(time.Duration(idx%5)*200*time.Millisecond, idx%11 == 0)
	}

	// events of A must strictly alternate between enter and exit
	var inside bool
	for _, ev := range h.recorder.events {
		require.Equal(t, "A", ev.Target)

		switch ev.Kind {
		case EventEnter:
			require.False(t, inside, "enter while inside")
			inside = true

		case EventExit:
			require.True(t, inside, "exit while outside")
			inside = false

		case EventClick:
			require.True(t, inside, "click while outside")
		}
	}
}

func TestController_ClickOncePerDwell(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	// gaze at the target for a long time without a trigger
	for range 600 {
		h.tick(16*time.Millisecond, false)
	}

	require.Equal(t, 1, h.recorder.count(EventClick))
	require.Equal(t, DwellIdle, h.controller.State())
}

func TestController_ClickAfterGazeTime(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	const dt = 16 * time.Millisecond

	var clickFrame = -1
	for frame := range 200 {
		h.tick(dt, false)
		if h.recorder.count(EventClick) == 1 {
			clickFrame = frame
			break
		}
	}

	require.NotEqual(t, -1, clickFrame)

	// frame 0 starts the dwell, every following frame adds dt
	elapsed := time.Duration(clickFrame) * dt
	require.GreaterOrEqual(t, elapsed, DefaultGazeTime)
	require.Less(t, elapsed, DefaultGazeTime+dt)
}

func TestController_TriggerAfterFeedback(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	h.tick(0, true)
	h.tick(2*time.Second, false)
	require.Equal(t, DwellIdle, h.controller.State())

	out := h.tick(0, true)
	require.Equal(t, DwellClicked, out.State)
	require.Equal(t, 2, h.recorder.count(EventClick))
}

func TestController_Release(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	h.tick(0, false)
	h.controller.Release()

	require.Nil(t, h.controller.Target())
	require.Equal(t, DwellIdle, h.controller.State())
	require.Equal(t, 1, h.recorder.count(EventExit))

	// releasing twice does not emit another exit
	h.controller.Release()
	require.Equal(t, 1, h.recorder.count(EventExit))
}

func TestController_Progress(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	require.Zero(t, h.tick(0, false).HoverProgress)
	require.InDelta(t, 0.25, h.tick(500*time.Millisecond, false).HoverProgress, 1e-9)
	require.InDelta(t, 0.75, h.tick(time.Second, false).HoverProgress, 1e-9)

	out := h.tick(500*time.Millisecond, false)
	require.Equal(t, DwellClicked, out.State)
	require.Zero(t, out.ClickProgress)

	require.InDelta(t, 0.5, h.tick(500*time.Millisecond, false).ClickProgress, 1e-9)
}

func TestController_ReticleDistance(t *testing.T) {
	h := newHarness(t, DefaultSettings())

	out := h.tick(0, false)
	require.Equal(t, DefaultMaxDistance, out.Reticle.Distance)
	require.False(t, out.HasHit)

	h.raycaster.target = &object{name: "T"}

	h.raycaster.distance = 0.1
	require.Equal(t, DefaultMinDistance, h.tick(0, false).Reticle.Distance)

	h.raycaster.distance = 3
	require.Equal(t, 3.0, h.tick(0, false).Reticle.Distance)

	// beyond the reach of the raycast
	h.raycaster.distance = 50
	require.Equal(t, DefaultMaxDistance, h.tick(0, false).Reticle.Distance)
}

type paramsRecorder struct {
	params []ReticleParams
}

func (p *paramsRecorder) SetReticleParams(params ReticleParams) {
	p.params = append(p.params, params)
}

func TestController_Renderer(t *testing.T) {
	sink := &paramsRecorder{}

	controller := NewController(DefaultSettings(), &scriptedRaycaster{}, WithRenderer(sink))
	out := controller.Tick(Input{Ray: forwardRay(), Delta: 16 * time.Millisecond})
	controller.Tick(Input{Ray: forwardRay(), Delta: 16 * time.Millisecond})

	require.Len(t, sink.params, 2)
	require.Equal(t, out.Reticle, sink.params[0])
}

// group is a target type that does not support ==
type group struct {
	members []string
}

func TestController_NonComparableTarget(t *testing.T) {
	var kinds []EventKind
	var target Target = group{members: []string{"a", "b"}}

	raycaster := RaycasterFunc(func(ray gm.Ray, maxDistance float64) (Hit, bool) {
		if target == nil {
			return Hit{}, false
		}

		return Hit{Target: target, Distance: 2}, true
	})

	controller := NewController(DefaultSettings(), raycaster,
		WithNotifier(NotifierFunc(func(event Event) { kinds = append(kinds, event.Kind) })),
		WithLogger(slog.New(slog.DiscardHandler)),
	)

	tick := func() Output {
		return controller.Tick(Input{Ray: forwardRay(), Delta: 100 * time.Millisecond})
	}

	require.NotPanics(t, func() {
		tick()
		tick()

		// same contents, new value
		target = group{members: []string{"a", "b"}}
		tick()

		target = group{members: []string{"c"}}
		tick()

		target = nil
		tick()
	})

	require.Equal(t, []EventKind{EventEnter, EventExit, EventEnter, EventExit}, kinds)
}

func TestSameTarget(t *testing.T) {
	a, b := &object{name: "a"}, &object{name: "a"}

	require.True(t, sameTarget(nil, nil))
	require.True(t, sameTarget(a, a))
	require.False(t, sameTarget(a, b))
	require.False(t, sameTarget(a, nil))
	require.False(t, sameTarget(nil, group{}))
	require.False(t, sameTarget(group{}, "group"))
	require.True(t, sameTarget(group{members: []string{"x"}}, group{members: []string{"x"}}))
}

func TestNewController_NilOptions(t *testing.T) {
	h := newHarness(t, DefaultSettings())
	h.raycaster.target = &object{name: "T", interactive: true}

	controller := NewController(DefaultSettings(), h.raycaster,
		WithNotifier(nil),
		WithInteractivity(nil),
		WithRenderer(nil),
		WithLogger(nil),
	)

	var out Output
	require.NotPanics(t, func() {
		for range 30 {
			out = controller.Tick(Input{Ray: forwardRay(), Delta: 100 * time.Millisecond})
		}

		h.raycaster.target = nil
		out = controller.Tick(Input{Ray: forwardRay(), Delta: 100 * time.Millisecond})
	})

	require.Equal(t, DwellIdle, out.State)
	require.Nil(t, out.Target)
}

func TestNewController_NilRaycaster(t *testing.T) {
	require.Panics(t, func() {
		NewController(DefaultSettings(), nil)
	})
}
