package gazebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/gm"
	"github.com/oliverbestmann/gaze/physics"
)

// DrawSpace draws the outlines of all shapes in the space onto target.
// The transform maps space coordinates to screen pixels. Interactive bodies
// and the currently gazed at body are highlighted.
func DrawSpace(target *ebiten.Image, space *physics.Space, transform gm.Affine, interactive gaze.Interactivity, gazed gaze.Target) {
	cp.DrawSpace(space.Chipmunk(), &debugImage{
		Image:       target,
		Transform:   transform,
		Interactive: interactive,
		Gazed:       gazed,
	})
}

type debugImage struct {
	Image       *ebiten.Image
	Transform   gm.Affine
	Interactive gaze.Interactivity
	Gazed       gaze.Target
}

func (d *debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d *debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	tpos := d.Transform.Transform(gm.Vec(pos))
	radius = d.Transform.TransformVec(gm.Vec{X: radius}).Length()

	var p vector.Path
	p.Arc(float32(tpos.X), float32(tpos.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.Close()

	d.draw(p, outline, fill)
}

func (d *debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawFatSegment(a, b, 0, fill, cp.FColor{}, data)
}

func (d *debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ta := d.Transform.Transform(gm.Vec(a))
	tb := d.Transform.Transform(gm.Vec(b))

	width := d.Transform.TransformVec(gm.Vec{X: radius * 2}).Length()

	var p vector.Path
	p.MoveTo(float32(ta.X), float32(ta.Y))
	p.LineTo(float32(tb.X), float32(tb.Y))

	dpo := &vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: float32(max(1, width))}, dpo)
}

func (d *debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path
	for idx, vert := range verts[:count] {
		tv := d.Transform.Transform(gm.Vec(vert))
		if idx == 0 {
			p.MoveTo(float32(tv.X), float32(tv.Y))
		} else {
			p.LineTo(float32(tv.X), float32(tv.Y))
		}
	}

	p.Close()

	d.draw(p, outline, fill)
}

func (d *debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	tpos := d.Transform.Transform(gm.Vec(pos))
	vector.DrawFilledCircle(d.Image, float32(tpos.X), float32(tpos.Y), float32(size/2), toColor(fill), true)
}

func (d *debugImage) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d *debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	body, _ := shape.UserData.(*physics.Body)

	switch {
	case body != nil && d.Gazed == gaze.Target(body):
		return cp.FColor{R: 1, G: 0.75, A: 0.5}

	case body != nil && d.Interactive != nil && d.Interactive.IsInteractive(body):
		return cp.FColor{G: 1, A: 0.25}

	default:
		return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 0.25}
	}
}

func (d *debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d *debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d *debugImage) Data() interface{} {
	return nil
}

func toColor(c cp.FColor) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}
