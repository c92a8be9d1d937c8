package gaze

import "github.com/oliverbestmann/gaze/gm"

// Hit describes the first object intersected by a ray.
type Hit struct {
	Target   Target
	Distance float64
	Point    gm.Vec3
}

// Raycaster finds the first target hit by the ray within maxDistance.
type Raycaster interface {
	Raycast(ray gm.Ray, maxDistance float64) (Hit, bool)
}

// RaycasterFunc adapts a plain function to the Raycaster interface.
type RaycasterFunc func(ray gm.Ray, maxDistance float64) (Hit, bool)

func (fn RaycasterFunc) Raycast(ray gm.Ray, maxDistance float64) (Hit, bool) {
	return fn(ray, maxDistance)
}

// Interactivity decides if a target takes part in gaze interaction.
type Interactivity interface {
	IsInteractive(target Target) bool
}

// InteractivityFunc adapts a plain function to the Interactivity interface.
type InteractivityFunc func(target Target) bool

func (fn InteractivityFunc) IsInteractive(target Target) bool {
	return fn(target)
}

// AlwaysInteractive treats every hit target as interactive.
var AlwaysInteractive = InteractivityFunc(func(target Target) bool {
	return target != nil
})

// ReticleRenderer receives the reticle parameters once per tick.
type ReticleRenderer interface {
	SetReticleParams(params ReticleParams)
}
