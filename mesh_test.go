package gaze

import (
	"testing"

	"github.com/oliverbestmann/gaze/color"
	"github.com/stretchr/testify/require"
)

func TestNewReticleMesh(t *testing.T) {
	mesh, err := NewReticleMesh(DefaultReticleSegments)
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, (DefaultReticleSegments+1)*2)
	require.Len(t, mesh.Indices, DefaultReticleSegments*6)

	for idx, vertex := range mesh.Vertices {
		require.InDelta(t, 1.0, vertex.XY().Length(), 1e-9)
		require.Equal(t, float64(idx%2), vertex.Z)
	}

	for _, index := range mesh.Indices {
		require.Less(t, int(index), len(mesh.Vertices))
	}

	// the ring is closed, the last pair sits on top of the first one
	first, last := mesh.Vertices[0], mesh.Vertices[len(mesh.Vertices)-2]
	require.InDelta(t, first.X, last.X, 1e-9)
	require.InDelta(t, first.Y, last.Y, 1e-9)
}

func TestNewReticleMesh_TooFewSegments(t *testing.T) {
	_, err := NewReticleMesh(2)
	require.Error(t, err)
}

func TestDwellFillColors(t *testing.T) {
	red := color.RGB(1, 0, 0)

	t.Run("empty", func(t *testing.T) {
		colors := DwellFillColors(8, 0, red)
		for _, c := range colors {
			require.Equal(t, red, c)
		}
	})

	t.Run("full", func(t *testing.T) {
		colors := DwellFillColors(8, 1, red)
		for _, c := range colors {
			require.Equal(t, color.Transparent, c)
		}
	})

	t.Run("half", func(t *testing.T) {
		colors := DwellFillColors(8, 0.5, red)

		require.Equal(t, color.Transparent, colors[0])
		require.Equal(t, color.Transparent, colors[3])

		// exactly on a boundary, the edge pair is fully visible
		require.Equal(t, red, colors[4])
		require.Equal(t, red, colors[5])
		require.Equal(t, red, colors[7])
	})

	t.Run("fading edge", func(t *testing.T) {
		colors := DwellFillColors(8, 0.3, red)

		// floor(4*0.3)*2 = 2 vertices cleared, then (2.4-2)/2 = 0.2 faded
		require.Equal(t, color.Transparent, colors[1])
		require.InDelta(t, 0.8, colors[2].A, 1e-6)
		require.Equal(t, colors[2], colors[3])
		require.Equal(t, red, colors[4])
	})

	t.Run("out of range amount", func(t *testing.T) {
		require.Len(t, DwellFillColors(8, 3, red), 8)
		require.Equal(t, red, DwellFillColors(8, -1, red)[0])
	})
}
