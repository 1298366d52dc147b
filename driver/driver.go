// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Driver-level errors shared by platform bindings.
var (
	// ErrNoDriver is returned when no windowing driver is registered or
	// available on this system.
	ErrNoDriver = errors.New("driver: no windowing driver available")

	// ErrUnknownDriver is returned when a named driver is not registered.
	ErrUnknownDriver = errors.New("driver: unknown driver")

	// ErrDriverUnavailable is returned when a named driver is registered
	// but reports itself unavailable on this system.
	ErrDriverUnavailable = errors.New("driver: driver unavailable")
)

// Handler receives raw events on the loop thread. Drivers invoke it
// strictly sequentially; handlers never overlap.
type Handler func(Event)

// WindowConfig describes the window a driver should create.
type WindowConfig struct {
	// Title is the initial window title.
	Title string

	// Width and Height are the requested inner size in logical pixels.
	Width, Height uint32

	// Resizable controls whether the user may resize the window.
	Resizable bool
}

// Driver is a windowing platform binding. A driver owns the native
// event loop; everything else in peck is driven by the Handler calls it
// makes. All methods must be called from a single goroutine, the one
// that calls Run, except RequestExit, which drivers must tolerate from
// the handler's dynamic extent.
type Driver interface {
	// Name returns the registry name of this driver.
	Name() string

	// Run starts the native event loop and blocks until it ends. The
	// first event delivered is Resumed. Run returns nil after a normal
	// shutdown (window closed or RequestExit).
	Run(loop Handler) error

	// CreateWindow creates (or returns the existing) window. Only valid
	// from within the loop, typically while handling Resumed.
	CreateWindow(cfg WindowConfig) (Window, error)

	// CreateSurface creates a presentation surface bound to the window.
	// The surface must be destroyed before the window is dropped.
	CreateSurface(w Window) (Surface, error)

	// RequestExit asks the loop to terminate. Events already queued may
	// be discarded; the code is advisory and mirrors the process exit
	// code the caller intends to use.
	RequestExit(code int)
}

// Window is a native window handle.
type Window interface {
	// InnerSize returns the window's inner size in physical pixels.
	InnerSize() (width, height uint32)

	// ScaleFactor returns the window's current scale factor.
	ScaleFactor() float64

	// RequestRedraw schedules a RedrawRequested event. Drivers that
	// redraw continuously may treat this as a no-op.
	RequestRedraw()

	// Release drops the window. Any surface created from it must have
	// been destroyed first.
	Release()
}

// Surface is a GPU-presentable target bound to a window, resized in
// lockstep with the window's physical size.
type Surface interface {
	// Size returns the surface size in physical pixels.
	Size() (width, height uint32)

	// Resize reconfigures the surface for a new physical size.
	Resize(width, height uint32)

	// Format returns the surface's texture format.
	Format() gputypes.TextureFormat

	// DeviceIndex identifies the physical device this surface presents
	// on. Renderers are cached per device index.
	DeviceIndex() int

	// AcquireFrame acquires the current presentation frame. Only valid
	// while handling RedrawRequested.
	AcquireFrame() (Frame, error)

	// Destroy releases the surface. The surface must not be used after.
	Destroy()
}

// TextureCreator creates GPU textures from raw RGBA pixel data.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// Frame is one acquired presentation frame. Drawing and presenting are
// only valid until Present returns.
type Frame interface {
	// TextureCreator returns the frame's texture factory, or nil when
	// the platform cannot create textures right now.
	TextureCreator() TextureCreator

	// DrawTexture draws a texture previously created through this
	// driver at the given position.
	DrawTexture(tex any, x, y float32) error

	// Present submits the frame for display, blocking until the device
	// has consumed the submission.
	Present() error

	// Poll gives the device a chance to process completed work.
	Poll()
}
