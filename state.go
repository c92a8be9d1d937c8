package gaze

// DwellState is the state of the dwell selection.
type DwellState uint8

const (
	// DwellIdle is the state while nothing interactive is gazed at,
	// or after the click feedback has finished.
	DwellIdle DwellState = iota

	// DwellHovering is the state while the dwell timer runs on an interactive target.
	DwellHovering

	// DwellClicked is the state during the click feedback window.
	DwellClicked
)

func (s DwellState) String() string {
	switch s {
	case DwellIdle:
		return "Idle"
	case DwellHovering:
		return "Hovering"
	case DwellClicked:
		return "Clicked"
	default:
		return "Unknown"
	}
}

// grown reports whether the reticle shows its dilated size in this state.
func (s DwellState) grown() bool {
	return s == DwellHovering || s == DwellClicked
}
