package gazebiten

import (
	"github.com/oliverbestmann/gaze"
	"github.com/oliverbestmann/gaze/color"
)

type ReticleStyle struct {
	// DefaultColor is used while idle.
	DefaultColor color.Color

	// BackgroundColor is the base ring color while the dwell ring fills up.
	BackgroundColor color.Color

	// GazeGradient colors the dwell ring by hover progress.
	GazeGradient color.Gradient

	// PostGradient colors the ring during the click feedback window.
	PostGradient color.Gradient
}

func DefaultReticleStyle() ReticleStyle {
	return ReticleStyle{
		DefaultColor:    color.White,
		BackgroundColor: color.White.WithAlpha(0.3),
		GazeGradient:    color.TwoColorGradient(color.RGB(0.6, 0.9, 1), color.RGB(0.1, 0.6, 1)),
		PostGradient:    color.TwoColorGradient(color.RGB(0.2, 1, 0.4), color.White),
	}
}

type ringColors struct {
	Base color.Color

	// per vertex colors of the dwell ring, nil if not shown
	Fill []color.Color
}

// colorsOf picks the ring colors for a reticle mesh with vertexCount vertices.
func (s ReticleStyle) colorsOf(out gaze.Output, vertexCount int) ringColors {
	switch out.State {
	case gaze.DwellHovering:
		return ringColors{
			Base: s.BackgroundColor,
			Fill: gaze.DwellFillColors(vertexCount, out.HoverProgress, s.GazeGradient.Evaluate(out.HoverProgress)),
		}

	case gaze.DwellClicked:
		return ringColors{Base: s.PostGradient.Evaluate(out.ClickProgress)}

	default:
		return ringColors{Base: s.DefaultColor}
	}
}
