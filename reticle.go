package gaze

import (
	"time"

	"github.com/oliverbestmann/gaze/gm"
)

// ReticleParams are the values a renderer needs to draw the reticle ring.
// Diameters are in meters at Distance, i.e. already scaled by Distance.
type ReticleParams struct {
	InnerDiameter float64
	OuterDiameter float64
	Distance      float64
}

// reticle holds the smoothed visual state of the ring. Diameters are kept
// at unit distance and converge towards the diameters of the target angles.
type reticle struct {
	innerAngle float64
	outerAngle float64

	innerDiameter float64
	outerDiameter float64

	distance float64
}

func (r *reticle) setAngles(settings *Settings, grown bool) {
	r.innerAngle = settings.MinInnerAngle()
	r.outerAngle = settings.MinOuterAngle()

	if grown {
		r.innerAngle += settings.GrowthAngle()
		r.outerAngle += settings.GrowthAngle()
	}
}

// setDistance places the reticle at the hit distance. Without a hit,
// the reticle is placed at the maximum distance.
func (r *reticle) setDistance(settings *Settings, hit Hit, ok bool) {
	if !ok {
		r.distance = settings.MaxDistance()
		return
	}

	r.distance = clamp(hit.Distance, settings.MinDistance(), settings.MaxDistance())
}

func (r *reticle) update(delta time.Duration, growthSpeed float64) {
	f := smoothingFactor(delta, growthSpeed)

	r.innerDiameter = lerp(r.innerDiameter, gm.DegToRad(r.innerAngle).Chord(), f)
	r.outerDiameter = lerp(r.outerDiameter, gm.DegToRad(r.outerAngle).Chord(), f)
}

func (r *reticle) params() ReticleParams {
	return ReticleParams{
		InnerDiameter: r.innerDiameter * r.distance,
		OuterDiameter: r.outerDiameter * r.distance,
		Distance:      r.distance,
	}
}

// smoothingFactor is the interpolation factor for one frame of exponential
// smoothing. It is clamped to [0, 1] so that long frames settle on the target
// instead of overshooting it.
func smoothingFactor(delta time.Duration, speed float64) float64 {
	return clamp(delta.Seconds()*speed, 0, 1)
}

func lerp(from, to, f float64) float64 {
	if f >= 1 {
		return to
	}

	return from + (to-from)*f
}

func clamp[T float32 | float64](value, lo, hi T) T {
	return max(lo, min(hi, value))
}
