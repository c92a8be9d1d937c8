package gazebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/gaze/widget"
)

// PollTouch returns the first touch that began this frame. A left mouse
// click is reported as a touch at the cursor position.
func PollTouch() (widget.Touch, bool) {
	var touches [4]ebiten.TouchID

	if ids := inpututil.AppendJustPressedTouchIDs(touches[:0]); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return widget.Touch{Position: image.Pt(x, y), Began: true}, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return widget.Touch{Position: image.Pt(x, y), Began: true}, true
	}

	return widget.Touch{}, false
}

// KeyTrigger reports if one of the trigger keys was pressed this frame.
func KeyTrigger() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
