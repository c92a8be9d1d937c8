// Package widget computes the layout of the on-screen cardboard widgets:
// the close button, the settings gear and the alignment divider between
// the two eye views.
//
// All rectangles are in pixels with the origin in the top left corner of
// the screen and y growing downwards.
package widget

import (
	"image"
)

const (
	// ButtonSizeDp is the width and height of the close and gear buttons.
	ButtonSizeDp = 42

	// ButtonPaddingDp is the clickable but not rendered border of a button.
	ButtonPaddingDp = 9

	AlignmentWidthDp  = 2
	AlignmentHeightMm = 24
)

// Metrics describes the physical screen.
type Metrics struct {
	Width, Height int
	DPI           float64

	// SafeArea is the part of the screen not covered by notches
	// or rounded corners, in screen coordinates.
	SafeArea image.Rectangle
}

// FullScreen returns metrics with the safe area covering the whole screen.
func FullScreen(width, height int, dpi float64) Metrics {
	return Metrics{
		Width:    width,
		Height:   height,
		DPI:      dpi,
		SafeArea: image.Rect(0, 0, width, height),
	}
}

func (m Metrics) DpToPixels(dp int) int {
	scale := m.DPI / 160
	return int(scale * float64(dp))
}

func (m Metrics) MmToPixels(mm int) int {
	scale := m.DPI / 25.4
	return int(scale * float64(mm))
}

// CloseButtonRect is the touch area of the close button in screen coordinates.
// It sits in the top left corner of the safe area.
func (m Metrics) CloseButtonRect() image.Rectangle {
	size := m.DpToPixels(ButtonSizeDp)
	origin := image.Pt(m.SafeArea.Min.X, m.SafeArea.Min.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
}

// GearButtonRect is the touch area of the gear button in screen coordinates.
// It sits in the top right corner of the safe area.
func (m Metrics) GearButtonRect() image.Rectangle {
	size := m.DpToPixels(ButtonSizeDp)
	origin := image.Pt(m.SafeArea.Max.X-size, m.SafeArea.Min.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
}

// CloseButtonRenderRect is the content area of the close button,
// in safe area coordinates.
func (m Metrics) CloseButtonRenderRect() image.Rectangle {
	return m.renderRect(m.CloseButtonRect())
}

// GearButtonRenderRect is the content area of the gear button,
// in safe area coordinates.
func (m Metrics) GearButtonRenderRect() image.Rectangle {
	return m.renderRect(m.GearButtonRect())
}

func (m Metrics) renderRect(rect image.Rectangle) image.Rectangle {
	return inset(m.toSafeAreaFrame(rect), m.DpToPixels(ButtonPaddingDp))
}

// AlignmentRect is the divider in the horizontal center at the bottom of the
// safe area, in safe area coordinates.
func (m Metrics) AlignmentRect() image.Rectangle {
	width := m.DpToPixels(AlignmentWidthDp)
	height := m.MmToPixels(AlignmentHeightMm)

	safeWidth := m.SafeArea.Dx()
	safeHeight := m.SafeArea.Dy()

	return image.Rect(
		(safeWidth-width)/2, safeHeight-height,
		(safeWidth+width)/2, safeHeight,
	)
}

func (m Metrics) toSafeAreaFrame(rect image.Rectangle) image.Rectangle {
	return rect.Sub(m.SafeArea.Min)
}

func inset(rect image.Rectangle, amount int) image.Rectangle {
	rect.Min.X += amount
	rect.Min.Y += amount
	rect.Max.X -= amount
	rect.Max.Y -= amount
	return rect
}

// Layout holds all widget rectangles for one set of Metrics.
type Layout struct {
	Metrics Metrics

	CloseButton       image.Rectangle
	CloseButtonRender image.Rectangle
	GearButton        image.Rectangle
	GearButtonRender  image.Rectangle
	Alignment         image.Rectangle
}

func (m Metrics) Layout() Layout {
	return Layout{
		Metrics:           m,
		CloseButton:       m.CloseButtonRect(),
		CloseButtonRender: m.CloseButtonRenderRect(),
		GearButton:        m.GearButtonRect(),
		GearButtonRender:  m.GearButtonRenderRect(),
		Alignment:         m.AlignmentRect(),
	}
}

// ToScreen translates a rectangle from safe area coordinates
// back to screen coordinates.
func (l Layout) ToScreen(rect image.Rectangle) image.Rectangle {
	return rect.Add(l.Metrics.SafeArea.Min)
}
