package gaze

import (
	"testing"
	"time"

	"github.com/oliverbestmann/gaze/gm"
	"github.com/stretchr/testify/require"
)

func TestReticle_ConvergesWithoutOvershoot(t *testing.T) {
	settings := DefaultSettings()

	target := gm.DegToRad(settings.MinOuterAngle() + settings.GrowthAngle()).Chord()

	for _, delta := range []time.Duration{
		time.Millisecond,
		16 * time.Millisecond,
		100 * time.Millisecond,
		// delta*growthSpeed is way above 1 here
		2 * time.Second,
	} {
		t.Run(delta.String(), func(t *testing.T) {
			var r reticle
			r.setAngles(&settings, true)

			previous := r.outerDiameter
			for range 5000 {
				r.update(delta, settings.GrowthSpeed())

				require.GreaterOrEqual(t, r.outerDiameter, previous)
				require.LessOrEqual(t, r.outerDiameter, target)
				previous = r.outerDiameter
			}

			require.InDelta(t, target, r.outerDiameter, 1e-6)
		})
	}
}

func TestReticle_ShrinksBack(t *testing.T) {
	settings := DefaultSettings()

	var r reticle
	r.setAngles(&settings, true)
	r.update(time.Second, settings.GrowthSpeed())

	r.setAngles(&settings, false)
	r.update(time.Second, settings.GrowthSpeed())

	require.InDelta(t, 0, r.innerDiameter, 1e-12)
	require.InDelta(t, gm.DegToRad(0.5).Chord(), r.outerDiameter, 1e-12)
}

func TestSmoothingFactor(t *testing.T) {
	require.InDelta(t, 0.128, smoothingFactor(16*time.Millisecond, 8), 1e-9)
	require.Equal(t, 1.0, smoothingFactor(time.Second, 8))
	require.Equal(t, 0.0, smoothingFactor(-time.Second, 8))
}

func TestReticle_Params(t *testing.T) {
	settings := DefaultSettings()

	var r reticle
	r.setAngles(&settings, true)
	r.setDistance(&settings, Hit{Distance: 4}, true)
	r.update(time.Second, settings.GrowthSpeed())

	params := r.params()
	require.Equal(t, 4.0, params.Distance)
	require.InDelta(t, 4*gm.DegToRad(1.5).Chord(), params.InnerDiameter, 1e-12)
	require.InDelta(t, 4*gm.DegToRad(2.0).Chord(), params.OuterDiameter, 1e-12)
}
