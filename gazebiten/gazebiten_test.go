package gazebiten

import (
	"image"
	"log/slog"
	"testing"

	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/color"
	"github.com/oliverbestmann/gaze/gm"
	"github.com/oliverbestmann/gaze/widget"
	"github.com/oliverbestmann/gaze/xr"
	"github.com/stretchr/testify/require"
)

func TestCamera_WorldToScreen(t *testing.T) {
	camera := NewCamera(10)
	camera.Center = gm.Vec{X: 2, Y: 1}

	screenSize := gm.Vec{X: 800, Y: 600}
	toScreen := camera.WorldToScreen(screenSize)

	require.Equal(t, gm.Vec{X: 400, Y: 300}, toScreen.Transform(camera.Center))

	// world y points up, screen y points down
	require.Equal(t, gm.Vec{X: 410, Y: 290}, toScreen.Transform(gm.Vec{X: 3, Y: 2}))

	world, ok := camera.ScreenToWorld(screenSize, gm.Vec{X: 410, Y: 290})
	require.True(t, ok)
	require.InDelta(t, 3.0, world.X, 1e-9)
	require.InDelta(t, 2.0, world.Y, 1e-9)

	_, ok = Camera{}.ScreenToWorld(screenSize, gm.Vec{})
	require.False(t, ok)
}

func TestReticleStyle_Colors(t *testing.T) {
	style := DefaultReticleStyle()

	idle := style.colorsOf(gaze.Output{State: gaze.DwellIdle}, 8)
	require.Equal(t, style.DefaultColor, idle.Base)
	require.Nil(t, idle.Fill)

	hovering := style.colorsOf(gaze.Output{State: gaze.DwellHovering, HoverProgress: 0.5}, 8)
	require.Equal(t, style.BackgroundColor, hovering.Base)
	require.Len(t, hovering.Fill, 8)
	require.Equal(t, color.Transparent, hovering.Fill[0])
	require.Equal(t, style.GazeGradient.Evaluate(0.5), hovering.Fill[7])

	clicked := style.colorsOf(gaze.Output{State: gaze.DwellClicked, ClickProgress: 1}, 8)
	require.Equal(t, style.PostGradient.Evaluate(1), clicked.Base)
	require.Nil(t, clicked.Fill)
}

func TestRingVertices(t *testing.T) {
	mesh, err := gaze.NewReticleMesh(4)
	require.NoError(t, err)

	center := gm.Vec{X: 100, Y: 50}
	red := color.RGB(1, 0, 0).WithAlpha(0.5)

	vertices := ringVertices(nil, mesh, center, 5, 10, uniformColors(len(mesh.Vertices), red))
	require.Len(t, vertices, len(mesh.Vertices))

	for idx, vertex := range vertices {
		pos := gm.Vec{X: float64(vertex.DstX), Y: float64(vertex.DstY)}
		distance := pos.Sub(center).Length()

		// even vertices are on the outer circle, odd ones on the inner circle
		expected := 10.0
		if idx%2 == 1 {
			expected = 5.0
		}

		require.InDelta(t, expected, distance, 1e-4)

		// colors are premultiplied
		require.InDelta(t, 0.5, vertex.ColorR, 1e-6)
		require.InDelta(t, 0.5, vertex.ColorA, 1e-6)
	}
}

func TestReticle_SetReticleParams(t *testing.T) {
	reticle, err := NewReticle(gaze.DefaultReticleSegments, DefaultReticleStyle())
	require.NoError(t, err)

	params := gaze.ReticleParams{InnerDiameter: 0.1, OuterDiameter: 0.2, Distance: 3}
	reticle.SetReticleParams(params)
	require.Equal(t, params, reticle.Params())

	_, err = NewReticle(2, DefaultReticleStyle())
	require.Error(t, err)
}

type noopSubsystem struct{}

func (noopSubsystem) Start() error   { return nil }
func (noopSubsystem) Stop() error    { return nil }
func (noopSubsystem) Destroy() error { return nil }

func TestDisplay_FromLoader(t *testing.T) {
	display := NewDisplay()

	loader := xr.NewLoader(xr.LoaderOptions{
		Provider: xr.SubsystemProviderFunc(func(name string) (xr.Subsystem, error) {
			return noopSubsystem{}, nil
		}),
		Display:     display,
		Logger:      slog.New(slog.DiscardHandler),
		GraphicsAPI: xr.GraphicsOpenGLES3,
		Orientation: xr.ScreenPortrait,
		Metrics:     widget.FullScreen(1600, 800, 320),
	})

	require.NoError(t, loader.Initialize())

	require.True(t, display.hasLayout)
	require.Equal(t, xr.GraphicsOpenGLES3, display.api)
	require.Equal(t, image.Rect(0, 0, 84, 84), display.layout.CloseButton)

	params := xr.NewDeviceParams(loader, &staticScanner{})
	params.Reload()
	require.Equal(t, 1, display.Reloads())
}

type staticScanner struct{}

func (*staticScanner) SavedDeviceParams() []byte { return []byte("cardboard v1") }
func (*staticScanner) ScanCount() int            { return 1 }
func (*staticScanner) StartScan()                {}
