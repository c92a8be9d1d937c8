// Package gazebiten draws the gaze reticle and the cardboard widgets with
// ebiten and turns ebiten input into controller input.
package gazebiten

import (
	"image"
	stdcolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/color"
	"github.com/oliverbestmann/gaze/gm"
)

// Reticle draws the reticle ring as a triangle mesh. It implements
// gaze.ReticleRenderer and keeps the latest parameters pushed by the controller.
type Reticle struct {
	Style ReticleStyle

	mesh   gaze.Mesh
	params gaze.ReticleParams

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewReticle(segments int, style ReticleStyle) (*Reticle, error) {
	mesh, err := gaze.NewReticleMesh(segments)
	if err != nil {
		return nil, err
	}

	indices := make([]uint16, len(mesh.Indices))
	for idx, index := range mesh.Indices {
		indices[idx] = uint16(index)
	}

	r := &Reticle{
		Style:   style,
		mesh:    mesh,
		indices: indices,
	}

	return r, nil
}

func (r *Reticle) SetReticleParams(params gaze.ReticleParams) {
	r.params = params
}

func (r *Reticle) Params() gaze.ReticleParams {
	return r.params
}

// Draw draws the reticle centered at the given screen position. The
// diameters of the reticle are in world units at the reticle distance,
// pixelsPerUnit converts them to pixels.
func (r *Reticle) Draw(dst *ebiten.Image, center gm.Vec, pixelsPerUnit float64, out gaze.Output) {
	colors := r.Style.colorsOf(out, len(r.mesh.Vertices))

	inner := r.params.InnerDiameter / 2 * pixelsPerUnit
	outer := r.params.OuterDiameter / 2 * pixelsPerUnit

	r.vertices = ringVertices(r.vertices[:0], r.mesh, center, inner, outer, uniformColors(len(r.mesh.Vertices), colors.Base))
	dst.DrawTriangles(r.vertices, r.indices, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if colors.Fill != nil {
		r.vertices = ringVertices(r.vertices[:0], r.mesh, center, inner, outer, colors.Fill)
		dst.DrawTriangles(r.vertices, r.indices, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

// ringVertices places the unit ring mesh between the inner and the outer
// radius around center.
func ringVertices(dst []ebiten.Vertex, mesh gaze.Mesh, center gm.Vec, inner, outer float64, colors []color.Color) []ebiten.Vertex {
	for idx, vertex := range mesh.Vertices {
		radius := outer + (inner-outer)*vertex.Z
		pos := center.Add(vertex.XY().Mul(radius))

		c := colors[idx]

		dst = append(dst, ebiten.Vertex{
			DstX:   float32(pos.X),
			DstY:   float32(pos.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: c.R * c.A,
			ColorG: c.G * c.A,
			ColorB: c.B * c.A,
			ColorA: c.A,
		})
	}

	return dst
}

func uniformColors(count int, c color.Color) []color.Color {
	colors := make([]color.Color, count)
	for idx := range colors {
		colors[idx] = c
	}

	return colors
}

var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(stdcolor.White)

		whitePixelImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	return whitePixelImage
}

var _ gaze.ReticleRenderer = (*Reticle)(nil)
