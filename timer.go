package gaze

import (
	"time"
)

// Timer is a one shot timer with a specific duration. It does not run on
// its own but needs to be advanced by calling Tick once per frame.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration

	finished     bool
	justFinished bool
}

// NewTimer creates a new timer
func NewTimer(duration time.Duration) Timer {
	return Timer{duration: duration}
}

// Tick adds the given amount of time to the Timer.
// Negative deltas are ignored.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.justFinished = false

	if t.finished {
		// nothing to do, timer is done
		return t
	}

	t.elapsed += max(0, delta)

	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.finished = true
		t.justFinished = true
	}

	return t
}

// Duration returns the configured duration of the Timer.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the already elapsed time of the Timer.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the remaining time of the Timer.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction returns the fraction to that this timer has finished. A freshly started timer
// will have a Fraction value of 0, a timer without a duration a value of 1.
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

// Finished returns true if the timer has reached its duration.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished returns true if the timer has reached its duration at the previous call to Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset resets the timer back to its starting point.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}
