package gazebiten

import (
	"github.com/oliverbestmann/gaze/gm"
)

// Camera is an orthographic top down camera. World y points up,
// screen y points down.
type Camera struct {
	// Center is the world position shown at the viewport origin.
	Center gm.Vec

	// PixelsPerUnit is the zoom of the camera.
	PixelsPerUnit float64

	// ViewportOrigin is the relative screen position of Center. Set this
	// to (0.5, 0.5) to center the camera.
	ViewportOrigin gm.Vec
}

func NewCamera(pixelsPerUnit float64) Camera {
	return Camera{
		PixelsPerUnit:  pixelsPerUnit,
		ViewportOrigin: gm.Vec{X: 0.5, Y: 0.5},
	}
}

func (c Camera) WorldToScreen(screenSize gm.Vec) gm.Affine {
	return gm.IdentityAffine().
		Translate(screenSize.MulEach(c.ViewportOrigin)).
		Scale(gm.Vec{X: c.PixelsPerUnit, Y: -c.PixelsPerUnit}).
		Translate(c.Center.Mul(-1))
}

// ScreenToWorld converts a screen position, e.g. the cursor, into world space.
func (c Camera) ScreenToWorld(screenSize gm.Vec, screen gm.Vec) (gm.Vec, bool) {
	toWorld, ok := c.WorldToScreen(screenSize).TryInverse()
	if !ok {
		return gm.Vec{}, false
	}

	return toWorld.Transform(screen), true
}
