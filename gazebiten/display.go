package gazebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/gaze/color"
	"github.com/oliverbestmann/gaze/widget"
	"github.com/oliverbestmann/gaze/xr"
)

// Display is an xr.Display that draws the widgets onto an ebiten image
// instead of handing them to a native renderer.
type Display struct {
	Color color.Color

	layout      widget.Layout
	hasLayout   bool
	orientation xr.ViewportOrientation
	api         xr.GraphicsAPI

	// number of device parameter reloads
	reloads int
}

func NewDisplay() *Display {
	return &Display{Color: color.White}
}

func (d *Display) SetScreenParams(layout widget.Layout) {
	d.layout = layout
	d.hasLayout = true
}

func (d *Display) SetViewportOrientation(orientation xr.ViewportOrientation) {
	d.orientation = orientation
}

func (d *Display) SetGraphicsAPI(api xr.GraphicsAPI) {
	d.api = api
}

func (d *Display) DeviceParamsChanged() {
	d.reloads++
}

func (d *Display) Reloads() int {
	return d.reloads
}

// Draw draws the close button, the gear button and the alignment divider.
func (d *Display) Draw(dst *ebiten.Image) {
	if !d.hasLayout {
		return
	}

	l := d.layout

	drawCloseIcon(dst, l.ToScreen(l.CloseButtonRender), d.Color)
	drawGearIcon(dst, l.ToScreen(l.GearButtonRender), d.Color)

	alignment := l.ToScreen(l.Alignment)
	vector.DrawFilledRect(dst,
		float32(alignment.Min.X), float32(alignment.Min.Y),
		float32(alignment.Dx()), float32(alignment.Dy()),
		d.Color, false)
}

// DrawStatus prints the display state in the top left corner below the close button.
func (d *Display) DrawStatus(dst *ebiten.Image, extra string) {
	text := fmt.Sprintf("viewport: %s\ngraphics: %s\nreloads: %d\n%s", d.orientation, d.api, d.reloads, extra)

	y := 0
	if d.hasLayout {
		y = d.layout.CloseButton.Max.Y
	}

	ebitenutil.DebugPrintAt(dst, text, 8, y+8)
}

func drawCloseIcon(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	width := float32(max(1, rect.Dx()/8))

	minX, minY := float32(rect.Min.X), float32(rect.Min.Y)
	maxX, maxY := float32(rect.Max.X), float32(rect.Max.Y)

	vector.StrokeLine(dst, minX, minY, maxX, maxY, width, c, true)
	vector.StrokeLine(dst, minX, maxY, maxX, minY, width, c, true)
}

func drawGearIcon(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	width := float32(max(1, rect.Dx()/8))

	cx := float32(rect.Min.X+rect.Max.X) / 2
	cy := float32(rect.Min.Y+rect.Max.Y) / 2
	radius := float32(rect.Dx()) / 2

	vector.StrokeCircle(dst, cx, cy, radius-width, width, c, true)
	vector.DrawFilledCircle(dst, cx, cy, radius/4, c, true)
}

var _ xr.Display = (*Display)(nil)
