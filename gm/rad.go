package gm

import "math"

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

func (r Rad) SinCos() (float64, float64) {
	return math.Sincos(float64(r))
}

func (r Rad) Tan() float64 {
	return math.Tan(float64(r))
}

// Chord returns the length of the segment that an angle r spans at unit
// distance, measured perpendicular to the bisector: 2*tan(r/2).
//
// A reticle that should appear with an angular size of r degrees at distance z
// needs a diameter of z*Chord.
func (r Rad) Chord() float64 {
	return 2 * math.Tan(float64(r)/2)
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
