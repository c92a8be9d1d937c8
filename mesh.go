package gaze

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/gaze/color"
	"github.com/oliverbestmann/gaze/gm"
)

// MinReticleSegments is the smallest number of segments that still forms a ring.
const MinReticleSegments = 3

// Mesh is a triangle mesh. Every three indices form one triangle.
type Mesh struct {
	Vertices []gm.Vec3
	Indices  []uint32
}

// NewReticleMesh builds the ring of the reticle as a thin prism around the
// view axis. For every segment boundary there are two vertices on the unit
// circle, one with z=0 (outer) and one with z=1 (inner). A shader places the
// ring by mapping z to the inner and outer diameters.
func NewReticleMesh(segments int) (Mesh, error) {
	if segments < MinReticleSegments {
		return Mesh{}, fmt.Errorf("reticle needs at least %d segments, got %d", MinReticleSegments, segments)
	}

	vertices := make([]gm.Vec3, 0, (segments+1)*2)
	indices := make([]uint32, 0, segments*6)

	for idx := 0; idx <= segments; idx++ {
		angle := gm.Rad(float64(idx) / float64(segments) * 2 * math.Pi)
		sin, cos := angle.SinCos()

		vertices = append(vertices,
			gm.Vec3{X: sin, Y: cos, Z: 0},
			gm.Vec3{X: sin, Y: cos, Z: 1},
		)
	}

	for idx := range uint32(segments) {
		vert := idx * 2
		indices = append(indices,
			vert+1, vert, vert+2,
			vert+1, vert+2, vert+3,
		)
	}

	return Mesh{Vertices: vertices, Indices: indices}, nil
}

// DwellFillColors computes per vertex colors of the dwell progress ring of a mesh
// created by NewReticleMesh. The first amount of the ring is cleared, the next
// segment boundary fades in and the remainder is colored in c.
func DwellFillColors(vertexCount int, amount float64, c color.Color) []color.Color {
	colors := make([]color.Color, vertexCount)

	amount = clamp(amount, 0, 1)

	// index of the first vertex pair that is not fully cleared
	edge := int(math.Floor(float64(vertexCount)/2*amount)) * 2

	for idx := range edge {
		colors[idx] = color.Transparent
	}

	if edge+1 < vertexCount {
		fade := float32(1 - (amount*float64(vertexCount)-float64(edge))/2)
		colors[edge] = c.WithAlpha(clamp(fade, 0, 1))
		colors[edge+1] = colors[edge]
	}

	for idx := edge + 2; idx < vertexCount; idx++ {
		colors[idx] = c
	}

	return colors
}
