// Package physics provides a planar gaze scene backed by a chipmunk space.
// Rays are projected onto the XY plane and resolved with a segment query.
package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/gm"
)

// Category is a cp shape filter category bit set.
type Category uint

const (
	CategoryDefault     Category = 1 << 0
	CategoryInteractive Category = 1 << 1
)

// Body is the gaze target handle of a shape in the Space.
type Body struct {
	Name     string
	Category Category

	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) Position() gm.Vec {
	return gm.Vec(b.body.Position())
}

// Space holds static shapes. Only a single shape is attached to each body.
type Space struct {
	space  *cp.Space
	bodies []*Body

	// QueryMask limits the categories that block a raycast.
	QueryMask Category
}

func NewSpace() *Space {
	return &Space{
		space:     cp.NewSpace(),
		QueryMask: Category(cp.ALL_CATEGORIES),
	}
}

func (s *Space) AddCircle(name string, category Category, center gm.Vec, radius float64) *Body {
	return s.add(name, category, center, func(body *cp.Body) *cp.Shape {
		return cp.NewCircle(body, radius, cp.Vector{})
	})
}

func (s *Space) AddBox(name string, category Category, center gm.Vec, size gm.Vec) *Body {
	return s.add(name, category, center, func(body *cp.Body) *cp.Shape {
		return cp.NewBox(body, size.X, size.Y, 0)
	})
}

// AddSegment adds a line from a to b with the given thickness. The body is
// placed at the midpoint of the segment.
func (s *Space) AddSegment(name string, category Category, a, b gm.Vec, thickness float64) *Body {
	center := a.Add(b).Mul(0.5)

	return s.add(name, category, center, func(body *cp.Body) *cp.Shape {
		return cp.NewSegment(body, cpVec(a.Sub(center)), cpVec(b.Sub(center)), thickness/2)
	})
}

func (s *Space) add(name string, category Category, center gm.Vec, newShape func(body *cp.Body) *cp.Shape) *Body {
	body := cp.NewStaticBody()
	body.SetPosition(cpVec(center))
	s.space.AddBody(body)

	shape := newShape(body)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(category), cp.ALL_CATEGORIES))
	s.space.AddShape(shape)

	handle := &Body{
		Name:     name,
		Category: category,
		body:     body,
		shape:    shape,
	}

	shape.UserData = handle

	s.bodies = append(s.bodies, handle)

	return handle
}

func (s *Space) Remove(handle *Body) {
	for idx, candidate := range s.bodies {
		if candidate != handle {
			continue
		}

		s.space.RemoveShape(handle.shape)
		s.space.RemoveBody(handle.body)

		s.bodies = append(s.bodies[:idx], s.bodies[idx+1:]...)
		return
	}
}

// Chipmunk returns the underlying cp space, e.g. for debug drawing.
func (s *Space) Chipmunk() *cp.Space {
	return s.space
}

func (s *Space) Bodies() []*Body {
	return s.bodies
}

func (s *Space) Find(name string) (*Body, bool) {
	for _, body := range s.bodies {
		if body.Name == name {
			return body, true
		}
	}

	return nil, false
}

// Raycast projects the ray onto the XY plane and returns the first shape hit
// within maxDistance. The hit distance is measured in the plane and the hit
// point keeps the ray origin's Z.
func (s *Space) Raycast(ray gm.Ray, maxDistance float64) (gaze.Hit, bool) {
	direction := ray.Direction.XY()
	if direction.LengthSqr() == 0 || maxDistance <= 0 || math.IsInf(maxDistance, 0) {
		return gaze.Hit{}, false
	}

	start := ray.Origin.XY()
	end := start.Add(direction.Normalized().Mul(maxDistance))

	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(s.QueryMask))

	info := s.space.SegmentQueryFirst(cpVec(start), cpVec(end), 0, filter)
	if info.Shape == nil {
		return gaze.Hit{}, false
	}

	handle, ok := info.Shape.UserData.(*Body)
	if !ok {
		return gaze.Hit{}, false
	}

	hit := gaze.Hit{
		Target:   handle,
		Distance: info.Alpha * maxDistance,
		Point:    gm.Vec3{X: info.Point.X, Y: info.Point.Y, Z: ray.Origin.Z},
	}

	return hit, true
}

// CategoryMask marks bodies of the included categories as interactive.
type CategoryMask Category

func (m CategoryMask) IsInteractive(target gaze.Target) bool {
	body, ok := target.(*Body)
	return ok && body != nil && Category(m)&body.Category != 0
}

func cpVec(v gm.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

var _ gaze.Raycaster = (*Space)(nil)
var _ gaze.Interactivity = CategoryMask(0)
