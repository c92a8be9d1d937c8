// Package scene provides a small in-memory 3D scene that can be
// raycast by the gaze controller.
package scene

import (
	"math"

	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/gm"
)

// DefaultInteractionLayer is the layer interactive objects are put on
// unless configured otherwise.
const DefaultInteractionLayer = 8

// Shape is anything a ray can be intersected with.
type Shape interface {
	Intersect(ray gm.Ray) (float64, bool)
}

type SphereShape struct {
	gm.Sphere
}

func (s SphereShape) Intersect(ray gm.Ray) (float64, bool) {
	return ray.IntersectSphere(s.Sphere)
}

type BoxShape struct {
	gm.AABB
}

func (s BoxShape) Intersect(ray gm.Ray) (float64, bool) {
	return ray.IntersectAABB(s.AABB)
}

// Object is a named shape on a layer. Objects are used as gaze targets,
// a pointer to an Object is the target handle.
type Object struct {
	Name  string
	Layer uint8
	Shape Shape

	// Hidden objects are skipped by raycasts.
	Hidden bool
}

// Scene is a flat list of objects.
type Scene struct {
	objects []*Object
}

func New(objects ...*Object) *Scene {
	return &Scene{objects: objects}
}

func (s *Scene) Add(object *Object) *Object {
	s.objects = append(s.objects, object)
	return object
}

func (s *Scene) Remove(object *Object) {
	for idx, candidate := range s.objects {
		if candidate == object {
			s.objects = append(s.objects[:idx], s.objects[idx+1:]...)
			return
		}
	}
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (*Object, bool) {
	for _, object := range s.objects {
		if object.Name == name {
			return object, true
		}
	}

	return nil, false
}

// Raycast returns the nearest visible object hit by the ray within maxDistance.
func (s *Scene) Raycast(ray gm.Ray, maxDistance float64) (gaze.Hit, bool) {
	var nearest *Object
	nearestDistance := math.Inf(1)

	for _, object := range s.objects {
		if object.Hidden || object.Shape == nil {
			continue
		}

		distance, ok := object.Shape.Intersect(ray)
		if !ok || distance > maxDistance || distance >= nearestDistance {
			continue
		}

		nearest = object
		nearestDistance = distance
	}

	if nearest == nil {
		return gaze.Hit{}, false
	}

	hit := gaze.Hit{
		Target:   nearest,
		Distance: nearestDistance,
		Point:    ray.At(nearestDistance),
	}

	return hit, true
}

// LayerMask selects layers by bit. Bit n set means layer n is included.
type LayerMask uint32

// DefaultLayerMask only contains DefaultInteractionLayer.
const DefaultLayerMask LayerMask = 1 << DefaultInteractionLayer

func LayerMaskOf(layers ...uint8) LayerMask {
	var mask LayerMask
	for _, layer := range layers {
		mask |= 1 << layer
	}

	return mask
}

func (m LayerMask) Contains(layer uint8) bool {
	return layer < 32 && m&(1<<layer) != 0
}

// IsInteractive implements gaze.Interactivity for targets that are *Object.
func (m LayerMask) IsInteractive(target gaze.Target) bool {
	object, ok := target.(*Object)
	return ok && object != nil && m.Contains(object.Layer)
}

var _ gaze.Raycaster = (*Scene)(nil)
var _ gaze.Interactivity = LayerMask(0)
