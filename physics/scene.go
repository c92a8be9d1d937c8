package physics

import (
	"fmt"

	"github.com/oliverbestmann/gaze/scene"
)

// FromScene builds a planar space from the XY footprint of all visible scene
// objects. Objects on a layer included in interactive get CategoryInteractive.
func FromScene(s *scene.Scene, interactive scene.LayerMask) (*Space, error) {
	space := NewSpace()

	for _, object := range s.Objects() {
		if object.Hidden {
			continue
		}

		category := CategoryDefault
		if interactive.Contains(object.Layer) {
			category = CategoryInteractive
		}

		switch shape := object.Shape.(type) {
		case scene.SphereShape:
			space.AddCircle(object.Name, category, shape.Center.XY(), shape.Radius)

		case scene.BoxShape:
			size := shape.Max.Sub(shape.Min)
			center := shape.Min.Add(size.Mul(0.5))
			space.AddBox(object.Name, category, center.XY(), size.XY())

		default:
			return nil, fmt.Errorf("object %q: unsupported shape %T", object.Name, object.Shape)
		}
	}

	return space, nil
}
