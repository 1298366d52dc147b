package peck

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/peck/driver"
)

// ElementState reports whether a key or button transitioned down or up.
type ElementState uint8

const (
	// Pressed means the key or button went down.
	Pressed ElementState = iota
	// Released means the key or button went up.
	Released
)

// String returns "pressed" or "released".
func (s ElementState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// MouseButton identifies a pointer button. It is the driver package's
// button type re-exported under the name callers see in [MouseInput].
type MouseButton = driver.Button

// Pointer buttons.
const (
	ButtonLeft   = driver.ButtonLeft
	ButtonRight  = driver.ButtonRight
	ButtonMiddle = driver.ButtonMiddle
)

// Event is a normalized window event. The set of implementations is
// closed: CloseRequested, CursorMoved, MouseInput, MouseWheel,
// KeyboardInput, Resized, and ModifiersChanged. Raw platform events with
// no counterpart here are dropped before reaching user code.
type Event interface {
	isEvent()
}

// CloseRequested is emitted when the window's close control was pressed
// or the platform otherwise asked for the window to close. Under the
// default event policy it terminates the loop; see [DefaultEventPolicy].
type CloseRequested struct{}

// CursorMoved carries the pointer position in logical coordinates
// (physical pixels divided by the screen scale factor).
type CursorMoved struct {
	X, Y float64
}

// MouseInput is a pointer button transition.
type MouseInput struct {
	State  ElementState
	Button MouseButton
}

// MouseWheel carries a scroll delta in lines. Pixel-based deltas from
// the platform are folded into line units before they get here; see the
// normalization rules in this package's event translation.
type MouseWheel struct {
	Delta float64
}

// KeyboardInput is a key transition. Only events whose keycode the
// platform resolved are forwarded; unresolved keys are dropped.
type KeyboardInput struct {
	State ElementState
	Key   gpucontext.Key
}

// Resized is emitted when the window was resized or its scale factor
// changed. It carries the replacement Screen snapshot.
type Resized struct {
	Screen Screen
}

// ModifiersChanged reports a change of the active keyboard modifiers.
type ModifiersChanged struct {
	Mods gpucontext.Modifiers
}

func (CloseRequested) isEvent()   {}
func (CursorMoved) isEvent()      {}
func (MouseInput) isEvent()       {}
func (MouseWheel) isEvent()       {}
func (KeyboardInput) isEvent()    {}
func (Resized) isEvent()          {}
func (ModifiersChanged) isEvent() {}
