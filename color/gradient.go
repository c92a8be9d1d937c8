package color

import (
	"cmp"
	"slices"
)

// Stop is a color at a specific position of a Gradient. Positions
// range from 0 to 1.
type Stop struct {
	Position float64
	Color    Color
}

// Gradient blends linearly between its stops. A zero Gradient evaluates
// to Transparent everywhere.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from the given stops. Stops do not need
// to be sorted.
func NewGradient(stops ...Stop) Gradient {
	sorted := slices.Clone(stops)

	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Position, b.Position)
	})

	return Gradient{stops: sorted}
}

// TwoColorGradient blends from one color at 0 to another at 1.
func TwoColorGradient(from, to Color) Gradient {
	return NewGradient(Stop{Position: 0, Color: from}, Stop{Position: 1, Color: to})
}

// Evaluate returns the color at position t. Values outside of the stop range
// are clamped to the first or last stop.
func (g Gradient) Evaluate(t float64) Color {
	if len(g.stops) == 0 {
		return Transparent
	}

	first := g.stops[0]
	if t <= first.Position {
		return first.Color
	}

	for idx := 1; idx < len(g.stops); idx++ {
		lo, hi := g.stops[idx-1], g.stops[idx]
		if t > hi.Position {
			continue
		}

		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Color
		}

		return lo.Color.Lerp(hi.Color, float32((t-lo.Position)/span))
	}

	return g.stops[len(g.stops)-1].Color
}
