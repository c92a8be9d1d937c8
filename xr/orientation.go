package xr

type ScreenOrientation uint8

const (
	ScreenUnknown ScreenOrientation = iota
	ScreenPortrait
	ScreenPortraitUpsideDown
	ScreenLandscapeLeft
	ScreenLandscapeRight
	ScreenAutoRotation
)

func (o ScreenOrientation) String() string {
	switch o {
	case ScreenUnknown:
		return "Unknown"
	case ScreenPortrait:
		return "Portrait"
	case ScreenPortraitUpsideDown:
		return "PortraitUpsideDown"
	case ScreenLandscapeLeft:
		return "LandscapeLeft"
	case ScreenLandscapeRight:
		return "LandscapeRight"
	case ScreenAutoRotation:
		return "AutoRotation"
	default:
		return "Invalid"
	}
}

// ViewportOrientation values match the native display api.
type ViewportOrientation uint8

const (
	ViewportLandscapeLeft ViewportOrientation = iota
	ViewportLandscapeRight
	ViewportPortrait
	ViewportPortraitUpsideDown
)

func (o ViewportOrientation) String() string {
	switch o {
	case ViewportLandscapeLeft:
		return "LandscapeLeft"
	case ViewportLandscapeRight:
		return "LandscapeRight"
	case ViewportPortrait:
		return "Portrait"
	case ViewportPortraitUpsideDown:
		return "PortraitUpsideDown"
	default:
		return "Invalid"
	}
}

func viewportOrientationOf(orientation ScreenOrientation) (ViewportOrientation, bool) {
	switch orientation {
	case ScreenLandscapeLeft:
		return ViewportLandscapeLeft, true
	case ScreenLandscapeRight:
		return ViewportLandscapeRight, true
	case ScreenPortrait:
		return ViewportPortrait, true
	case ScreenPortraitUpsideDown:
		return ViewportPortraitUpsideDown, true
	default:
		return ViewportLandscapeLeft, false
	}
}

type GraphicsAPI uint8

const (
	GraphicsNone GraphicsAPI = iota
	GraphicsOpenGLES2
	GraphicsOpenGLES3
	GraphicsMetal
)

func (api GraphicsAPI) String() string {
	switch api {
	case GraphicsNone:
		return "None"
	case GraphicsOpenGLES2:
		return "OpenGLES2"
	case GraphicsOpenGLES3:
		return "OpenGLES3"
	case GraphicsMetal:
		return "Metal"
	default:
		return "Invalid"
	}
}

func (api GraphicsAPI) supported() bool {
	return api == GraphicsOpenGLES2 || api == GraphicsOpenGLES3 || api == GraphicsMetal
}
