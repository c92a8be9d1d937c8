package gaze

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidSetting is returned by the Settings setters when a value is
// out of range. The previous value is kept in that case.
var ErrInvalidSetting = errors.New("invalid setting")

const (
	DefaultGazeTime              = 2 * time.Second
	DefaultGrowthAngle           = 1.5
	DefaultGrowthSpeed           = 8.0
	DefaultMinInnerAngle         = 0.0
	DefaultMinOuterAngle         = 0.5
	DefaultClickFeedbackDuration = 1 * time.Second
	DefaultReticleSegments       = 20
	DefaultMinDistance           = 0.45
	DefaultMaxDistance           = 20.0
)

// Settings configures the dwell timing and the reticle animation.
// All values are validated when set. Angles are given in degrees,
// distances in meters.
type Settings struct {
	gazeTime              time.Duration
	growthAngle           float64
	growthSpeed           float64
	minInnerAngle         float64
	minOuterAngle         float64
	clickFeedbackDuration time.Duration
	reticleSegments       int
	minDistance           float64
	maxDistance           float64

	logger *slog.Logger
}

func DefaultSettings() Settings {
	return Settings{
		gazeTime:              DefaultGazeTime,
		growthAngle:           DefaultGrowthAngle,
		growthSpeed:           DefaultGrowthSpeed,
		minInnerAngle:         DefaultMinInnerAngle,
		minOuterAngle:         DefaultMinOuterAngle,
		clickFeedbackDuration: DefaultClickFeedbackDuration,
		reticleSegments:       DefaultReticleSegments,
		minDistance:           DefaultMinDistance,
		maxDistance:           DefaultMaxDistance,
	}
}

// WithLogger returns a copy of the settings that reports rejected values
// to the given logger instead of slog.Default.
func (s Settings) WithLogger(logger *slog.Logger) Settings {
	s.logger = logger
	return s
}

func (s *Settings) GazeTime() time.Duration              { return s.gazeTime }
func (s *Settings) GrowthAngle() float64                 { return s.growthAngle }
func (s *Settings) GrowthSpeed() float64                 { return s.growthSpeed }
func (s *Settings) MinInnerAngle() float64               { return s.minInnerAngle }
func (s *Settings) MinOuterAngle() float64               { return s.minOuterAngle }
func (s *Settings) ClickFeedbackDuration() time.Duration { return s.clickFeedbackDuration }
func (s *Settings) ReticleSegments() int                 { return s.reticleSegments }
func (s *Settings) MinDistance() float64                 { return s.minDistance }
func (s *Settings) MaxDistance() float64                 { return s.maxDistance }

// SetGazeTime sets the dwell duration after which a gazed at target is clicked.
// A new value applies starting with the next hover.
func (s *Settings) SetGazeTime(value time.Duration) error {
	if value <= 0 {
		return s.reject("gazeTime", value, "must be positive")
	}

	s.gazeTime = value
	return nil
}

func (s *Settings) SetGrowthAngle(value float64) error {
	if !(value >= 0) {
		return s.reject("growthAngle", value, "must not be negative")
	}

	s.growthAngle = value
	return nil
}

func (s *Settings) SetGrowthSpeed(value float64) error {
	if !(value > 0) {
		return s.reject("growthSpeed", value, "must be positive")
	}

	s.growthSpeed = value
	return nil
}

func (s *Settings) SetMinInnerAngle(value float64) error {
	if !(value >= 0) || value > s.minOuterAngle {
		return s.reject("minInnerAngle", value, "must be within [0, minOuterAngle]")
	}

	s.minInnerAngle = value
	return nil
}

func (s *Settings) SetMinOuterAngle(value float64) error {
	if !(value >= s.minInnerAngle) {
		return s.reject("minOuterAngle", value, "must not be less than minInnerAngle")
	}

	s.minOuterAngle = value
	return nil
}

func (s *Settings) SetClickFeedbackDuration(value time.Duration) error {
	if value <= 0 {
		return s.reject("clickFeedbackDuration", value, "must be positive")
	}

	s.clickFeedbackDuration = value
	return nil
}

func (s *Settings) SetReticleSegments(value int) error {
	if value < MinReticleSegments {
		return s.reject("reticleSegments", value, fmt.Sprintf("must be at least %d", MinReticleSegments))
	}

	s.reticleSegments = value
	return nil
}

func (s *Settings) SetMinDistance(value float64) error {
	if !(value >= 0) || value >= s.maxDistance {
		return s.reject("minDistance", value, "must be within [0, maxDistance)")
	}

	s.minDistance = value
	return nil
}

// SetMaxDistance sets the maximum raycast distance. It is also
// the distance the reticle is shown at when nothing is hit.
func (s *Settings) SetMaxDistance(value float64) error {
	if !(value > s.minDistance) {
		return s.reject("maxDistance", value, "must be greater than minDistance")
	}

	s.maxDistance = value
	return nil
}

func (s *Settings) reject(name string, value any, reason string) error {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Warn("Rejected gaze setting, keeping previous value",
		slog.String("setting", name),
		slog.Any("value", value),
		slog.String("reason", reason),
	)

	return fmt.Errorf("%w: %s=%v %s", ErrInvalidSetting, name, value, reason)
}
