package gaze

import (
	"time"
)

// FrameClock turns wall clock readings taken once per frame into the
// per frame delta the Controller expects.
//
// The progression of time can be scaled by setting the Scale field.
// A zero Scale is treated as 1.
type FrameClock struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	Scale float64

	last time.Time
}

// Update advances the clock to now and returns the delta since the previous
// call. The first call only records the starting point and yields a zero delta.
func (c *FrameClock) Update(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	scale := c.Scale
	if scale == 0 {
		scale = 1
	}

	delta := time.Duration(float64(now.Sub(c.last)) * scale)
	c.last = now

	// the wall clock might jump backwards
	delta = max(0, delta)

	c.Delta = delta
	c.DeltaSecs = delta.Seconds()
	c.Elapsed += delta

	return delta
}
