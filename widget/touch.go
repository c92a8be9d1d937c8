package widget

import "image"

type TouchKind uint8

const (
	TouchNone TouchKind = iota
	TouchTrigger
	TouchClose
	TouchGear
)

func (k TouchKind) String() string {
	switch k {
	case TouchNone:
		return "None"
	case TouchTrigger:
		return "Trigger"
	case TouchClose:
		return "Close"
	case TouchGear:
		return "Gear"
	default:
		return "Unknown"
	}
}

// Touch is the first touch point of a frame in screen coordinates.
type Touch struct {
	Position image.Point

	// Began is set on the frame the finger went down.
	Began bool
}

// Classify decides what a touch does. Only touches that just began count.
// A touch inside one of the buttons is never a trigger.
func (l Layout) Classify(touch Touch) TouchKind {
	if !touch.Began {
		return TouchNone
	}

	switch {
	case touch.Position.In(l.CloseButton):
		return TouchClose

	case touch.Position.In(l.GearButton):
		return TouchGear

	default:
		return TouchTrigger
	}
}
