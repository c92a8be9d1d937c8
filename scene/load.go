package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/gaze/gm"
	"gopkg.in/yaml.v3"
)

var ErrInvalidObject = errors.New("invalid scene object")

type fileScene struct {
	Objects []fileObject `yaml:"objects"`
}

type fileObject struct {
	Name   string      `yaml:"name"`
	Layer  *uint8      `yaml:"layer"`
	Hidden bool        `yaml:"hidden"`
	Sphere *fileSphere `yaml:"sphere"`
	Box    *fileBox    `yaml:"box"`
}

type fileSphere struct {
	Center [3]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

type fileBox struct {
	Center [3]float64 `yaml:"center"`
	Size   [3]float64 `yaml:"size"`
}

// Load parses a scene description in yaml. Objects without a layer
// are put on DefaultInteractionLayer.
//
//	objects:
//	  - name: door
//	    box: {center: [0, 1, 4], size: [1, 2, 0.1]}
//	  - name: lamp
//	    layer: 0
//	    sphere: {center: [2, 2, 5], radius: 0.3}
func Load(r io.Reader) (*Scene, error) {
	var file fileScene

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := New()

	for idx, fo := range file.Objects {
		object, err := fo.toObject()
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", idx, fo.Name, err)
		}

		s.Add(object)
	}

	return s, nil
}

// LoadFile reads a scene description from the given path.
func LoadFile(path string) (*Scene, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene %s: %w", path, err)
	}

	defer fp.Close()

	s, err := Load(fp)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}

	return s, nil
}

func (fo fileObject) toObject() (*Object, error) {
	object := &Object{
		Name:   fo.Name,
		Layer:  DefaultInteractionLayer,
		Hidden: fo.Hidden,
	}

	if fo.Layer != nil {
		if *fo.Layer >= 32 {
			return nil, fmt.Errorf("%w: layer %d out of range", ErrInvalidObject, *fo.Layer)
		}

		object.Layer = *fo.Layer
	}

	switch {
	case fo.Sphere != nil && fo.Box != nil:
		return nil, fmt.Errorf("%w: both sphere and box given", ErrInvalidObject)

	case fo.Sphere != nil:
		if fo.Sphere.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere radius must be positive", ErrInvalidObject)
		}

		object.Shape = SphereShape{Sphere: gm.Sphere{
			Center: vec3Of(fo.Sphere.Center),
			Radius: fo.Sphere.Radius,
		}}

	case fo.Box != nil:
		size := vec3Of(fo.Box.Size)
		if size.X < 0 || size.Y < 0 || size.Z < 0 {
			return nil, fmt.Errorf("%w: box size must not be negative", ErrInvalidObject)
		}

		object.Shape = BoxShape{AABB: gm.AABBWithCenterAndSize(vec3Of(fo.Box.Center), size)}

	default:
		return nil, fmt.Errorf("%w: no shape given", ErrInvalidObject)
	}

	return object, nil
}

func vec3Of(v [3]float64) gm.Vec3 {
	return gm.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
