package peck

import (
	"math"

	"github.com/gogpu/peck/driver"
)

// pixelsPerLine is the assumed line height, in physical pixels, used to
// unify pixel-based and line-based scroll deltas. Fixed on purpose:
// platforms that report pixel deltas do not report their line height.
const pixelsPerLine = 20

// normalizeEvent translates a raw driver event into at most one
// normalized Event, given the current screen snapshot. It reports false
// for raw kinds that have no normalized counterpart.
//
// Both driver.Resized and driver.ScaleFactorChanged collapse into a
// single Resized event; the caller is expected to have refreshed the
// screen snapshot before calling, so the carried Screen is current.
func normalizeEvent(raw driver.Event, screen Screen) (Event, bool) {
	switch ev := raw.(type) {
	case driver.CloseRequested:
		return CloseRequested{}, true
	case driver.CursorMoved:
		s := screen.Scale()
		return CursorMoved{X: ev.X / s, Y: ev.Y / s}, true
	case driver.MouseInput:
		return MouseInput{State: elementState(ev.Pressed), Button: ev.Button}, true
	case driver.WheelPixels:
		// Round up so a small flick still scrolls one line.
		return MouseWheel{Delta: math.Ceil(ev.Y / pixelsPerLine)}, true
	case driver.WheelLines:
		return MouseWheel{Delta: ev.Y}, true
	case driver.KeyboardInput:
		if !ev.Resolved {
			return nil, false
		}
		return KeyboardInput{State: elementState(ev.Pressed), Key: ev.Key}, true
	case driver.Resized, driver.ScaleFactorChanged:
		return Resized{Screen: screen}, true
	case driver.ModifiersChanged:
		return ModifiersChanged{Mods: ev.Mods}, true
	}
	return nil, false
}

func elementState(pressed bool) ElementState {
	if pressed {
		return Pressed
	}
	return Released
}
