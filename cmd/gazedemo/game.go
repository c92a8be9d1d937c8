package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/color"
	"github.com/oliverbestmann/gaze/config"
	"github.com/oliverbestmann/gaze/gazebiten"
	"github.com/oliverbestmann/gaze/gm"
	"github.com/oliverbestmann/gaze/physics"
	"github.com/oliverbestmann/gaze/widget"
	"github.com/oliverbestmann/gaze/xr"
)

type game struct {
	cfg    *config.Config
	logger *slog.Logger

	space       *physics.Space
	interactive physics.CategoryMask
	controller  *gaze.Controller

	loader  *xr.Loader
	params  *xr.DeviceParams
	scanner *simulatedScanner

	reticle *gazebiten.Reticle
	display *gazebiten.Display
	camera  gazebiten.Camera

	clock      gaze.FrameClock
	screenSize gm.Vec
	out        gaze.Output
	ray        gm.Ray

	clicks map[*physics.Body]int
}

func (g *game) metrics(width, height int, scaleFactor float64) widget.Metrics {
	return widget.FullScreen(width, height, g.cfg.Window.DPI*scaleFactor)
}

func (g *game) onGazeEvent(ev gaze.Event) {
	body, _ := ev.Target.(*physics.Body)
	if body == nil {
		return
	}

	if ev.Kind == gaze.EventClick {
		g.clicks[body]++
	}

	g.logger.Info("Gaze event",
		slog.String("kind", ev.Kind.String()),
		slog.String("target", body.Name))
}

func (g *game) Update() error {
	delta := g.clock.Update(time.Now())

	scaleFactor := ebiten.Monitor().DeviceScaleFactor()
	g.loader.UpdateScreenParams(g.metrics(int(g.screenSize.X), int(g.screenSize.Y), scaleFactor))

	g.scanner.Tick(delta)
	if g.params.HasNew() {
		g.params.Reload()
	}

	trigger := gazebiten.KeyTrigger()

	if touch, ok := gazebiten.PollTouch(); ok {
		switch g.loader.ClassifyTouch(touch) {
		case widget.TouchClose:
			return ebiten.Termination
		case widget.TouchGear:
			g.params.Scan()
		case widget.TouchTrigger:
			trigger = true
		}
	}

	g.ray = g.gazeRay()

	g.out = g.controller.Tick(gaze.Input{
		Ray:     g.ray,
		Delta:   delta,
		Trigger: trigger,
	})

	return nil
}

// gazeRay points from the viewer in the world origin towards the cursor.
func (g *game) gazeRay() gm.Ray {
	x, y := ebiten.CursorPosition()

	cursor, ok := g.camera.ScreenToWorld(g.screenSize, gm.Vec{X: float64(x), Y: float64(y)})
	if !ok {
		return gm.Ray{Direction: gm.Vec3{X: 1}}
	}

	return gm.RayTowards(gm.Vec3Zero, gm.Vec3{X: cursor.X, Y: cursor.Y})
}

func (g *game) Draw(screen *ebiten.Image) {
	toScreen := g.camera.WorldToScreen(g.screenSize)

	gazebiten.DrawSpace(screen, g.space, toScreen, g.interactive, g.out.Target)

	// the gaze line ends at the hit point or at the max distance
	distance := g.out.Reticle.Distance
	end := g.ray.At(distance).XY()

	origin := toScreen.Transform(gm.VecZero)
	endOnScreen := toScreen.Transform(end)

	vector.StrokeLine(screen,
		float32(origin.X), float32(origin.Y),
		float32(endOnScreen.X), float32(endOnScreen.Y),
		1, color.White.WithAlpha(0.25), true)

	g.reticle.Draw(screen, endOnScreen, g.camera.PixelsPerUnit, g.out)

	g.display.Draw(screen)
	g.display.DrawStatus(screen, g.status())
}

func (g *game) status() string {
	text := fmt.Sprintf("state: %s\nhover: %3.0f%%\nviewer: %s",
		g.out.State, g.out.HoverProgress*100, g.scanner.params())

	if body, ok := g.out.Target.(*physics.Body); ok {
		text += fmt.Sprintf("\ntarget: %s (%d clicks)", body.Name, g.clicks[body])
	}

	return text
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.screenSize = gm.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// simulatedScanner pretends to scan a viewer QR code. A scan takes
// scanDuration to complete.
type simulatedScanner struct {
	saved []byte
	count int

	scan     gaze.Timer
	scanning bool
}

const scanDuration = 1500 * time.Millisecond

func (s *simulatedScanner) SavedDeviceParams() []byte {
	return s.saved
}

func (s *simulatedScanner) ScanCount() int {
	return s.count
}

func (s *simulatedScanner) StartScan() {
	s.scan = gaze.NewTimer(scanDuration)
	s.scanning = true
}

func (s *simulatedScanner) Tick(delta time.Duration) {
	if !s.scanning || !s.scan.Tick(delta).JustFinished() {
		return
	}

	s.scanning = false
	s.count++
	s.saved = fmt.Appendf(nil, "cardboard-v%d", s.count)
}

func (s *simulatedScanner) params() string {
	switch {
	case s.scanning:
		return fmt.Sprintf("scanning %3.0f%%", s.scan.Fraction()*100)
	case len(s.saved) == 0:
		return "none"
	default:
		return string(s.saved)
	}
}

var _ xr.QRCodeScanner = (*simulatedScanner)(nil)
