// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import "github.com/gogpu/gpucontext"

// Event is a raw platform event delivered to the loop handler. The set
// of implementations is closed; peck translates the window-level subset
// into its normalized event union and drops the rest.
type Event interface {
	isRawEvent()
}

// Button identifies a pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Resumed reports that the application became active and a surface may
// be created. It is the first event every driver delivers.
type Resumed struct{}

// Suspended reports that the application was deactivated; the surface
// must be dropped, the window may be kept for the next Resumed.
type Suspended struct{}

// RedrawRequested asks for one frame to be rendered and presented.
type RedrawRequested struct{}

// EventsCleared reports that the platform queue drained; continuous
// renderers request the next redraw here.
type EventsCleared struct{}

// CloseRequested reports that the window was asked to close.
type CloseRequested struct{}

// CursorMoved carries the pointer position in physical pixels.
type CursorMoved struct {
	X, Y float64
}

// MouseInput is a pointer button transition.
type MouseInput struct {
	Pressed bool
	Button  Button
}

// WheelPixels is a scroll delta in physical pixels.
type WheelPixels struct {
	X, Y float64
}

// WheelLines is a scroll delta in whole lines.
type WheelLines struct {
	X, Y float64
}

// KeyboardInput is a key transition. Resolved is false when the
// platform could not map the scancode to a keycode; such events carry
// no usable Key.
type KeyboardInput struct {
	Pressed  bool
	Key      gpucontext.Key
	Resolved bool
}

// Resized carries the new window size in physical pixels.
type Resized struct {
	Width, Height uint32
}

// ScaleFactorChanged carries the new scale factor together with the
// window's new physical size.
type ScaleFactorChanged struct {
	Scale         float64
	Width, Height uint32
}

// ModifiersChanged reports a change of the active keyboard modifiers.
type ModifiersChanged struct {
	Mods gpucontext.Modifiers
}

func (Resumed) isRawEvent()            {}
func (Suspended) isRawEvent()          {}
func (RedrawRequested) isRawEvent()    {}
func (EventsCleared) isRawEvent()      {}
func (CloseRequested) isRawEvent()     {}
func (CursorMoved) isRawEvent()        {}
func (MouseInput) isRawEvent()         {}
func (WheelPixels) isRawEvent()        {}
func (WheelLines) isRawEvent()         {}
func (KeyboardInput) isRawEvent()      {}
func (Resized) isRawEvent()            {}
func (ScaleFactorChanged) isRawEvent() {}
func (ModifiersChanged) isRawEvent()   {}
