package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/oliverbestmann/gaze"
)

type Config struct {
	Gaze    GazeConfig    `toml:"gaze"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
}

type GazeConfig struct {
	GazeTime              time.Duration `toml:"gaze_time"`
	GrowthAngle           float64       `toml:"growth_angle"`    // degrees
	GrowthSpeed           float64       `toml:"growth_speed"`    // 1/s
	MinInnerAngle         float64       `toml:"min_inner_angle"` // degrees
	MinOuterAngle         float64       `toml:"min_outer_angle"` // degrees
	ClickFeedbackDuration time.Duration `toml:"click_feedback"`
	ReticleSegments       int           `toml:"reticle_segments"`
	MinDistance           float64       `toml:"min_distance"` // meters
	MaxDistance           float64       `toml:"max_distance"` // meters
	InteractionLayer      uint8         `toml:"interaction_layer"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	DPI    float64 `toml:"dpi"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes toml on top of the default configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	if cfg.Gaze.InteractionLayer >= 32 {
		return nil, fmt.Errorf("interaction_layer %d out of range", cfg.Gaze.InteractionLayer)
	}

	return cfg, nil
}

func Defaults() *Config {
	settings := gaze.DefaultSettings()

	return &Config{
		Gaze: GazeConfig{
			GazeTime:              settings.GazeTime(),
			GrowthAngle:           settings.GrowthAngle(),
			GrowthSpeed:           settings.GrowthSpeed(),
			MinInnerAngle:         settings.MinInnerAngle(),
			MinOuterAngle:         settings.MinOuterAngle(),
			ClickFeedbackDuration: settings.ClickFeedbackDuration(),
			ReticleSegments:       settings.ReticleSegments(),
			MinDistance:           settings.MinDistance(),
			MaxDistance:           settings.MaxDistance(),
			InteractionLayer:      8,
		},
		Window: WindowConfig{
			Title:  "gaze",
			Width:  1280,
			Height: 720,
			DPI:    160,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Apply pushes the configured values through the validated setters.
// Rejected values keep their previous setting, all rejections are returned.
func (c GazeConfig) Apply(settings *gaze.Settings) error {
	var errs []error

	set := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	set(settings.SetGazeTime(c.GazeTime))
	set(settings.SetGrowthAngle(c.GrowthAngle))
	set(settings.SetGrowthSpeed(c.GrowthSpeed))
	set(settings.SetClickFeedbackDuration(c.ClickFeedbackDuration))
	set(settings.SetReticleSegments(c.ReticleSegments))

	// the setters validate against the current partner value,
	// so widen the range before narrowing it
	if c.MinInnerAngle <= settings.MinOuterAngle() {
		set(settings.SetMinInnerAngle(c.MinInnerAngle))
		set(settings.SetMinOuterAngle(c.MinOuterAngle))
	} else {
		set(settings.SetMinOuterAngle(c.MinOuterAngle))
		set(settings.SetMinInnerAngle(c.MinInnerAngle))
	}

	if c.MinDistance < settings.MaxDistance() {
		set(settings.SetMinDistance(c.MinDistance))
		set(settings.SetMaxDistance(c.MaxDistance))
	} else {
		set(settings.SetMaxDistance(c.MaxDistance))
		set(settings.SetMinDistance(c.MinDistance))
	}

	return errors.Join(errs...)
}

// NewLogger builds a slog.Logger writing to w.
func (c LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch c.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging format %q: must be text or json", c.Format)
	}
}
