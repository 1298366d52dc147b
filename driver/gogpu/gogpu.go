// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"

	gogpuapp "github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/peck/driver"
)

// Name is the registry name of the gogpu driver.
const Name = "gogpu"

// Priority is high so automatic selection prefers this driver over
// headless fallbacks.
const Priority = 100

func init() {
	driver.Register(Name, Priority, func() (driver.Driver, error) {
		return New(), nil
	}, func() bool { return true })
}

// Driver errors.
var (
	// ErrNoWindow is returned when a surface is requested before a
	// window exists.
	ErrNoWindow = errors.New("gogpu: no window created")

	// ErrNoFrame is returned when a frame is acquired outside a draw
	// callback.
	ErrNoFrame = errors.New("gogpu: no active draw context")
)

// Driver adapts gogpu's callback-driven application to the raw event
// stream. gogpu owns the native loop, so the driver synthesizes the
// Resumed event before handing control to gogpu's Run.
type Driver struct {
	loop driver.Handler
	app  *gogpuapp.App
	win  *window

	// dc is the draw context of the frame currently being drawn. It is
	// only valid inside gogpu's OnDraw callback; frames acquired
	// outside it fail.
	dc *gogpuapp.Context

	lastW    int
	lastH    int
	exiting  bool
	exitCode int
}

// New creates an unstarted gogpu driver.
func New() *Driver {
	return &Driver{}
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Run implements driver.Driver. It delivers Resumed synchronously so
// the loop can create its window and surface, then blocks inside
// gogpu's native loop until the window closes.
func (d *Driver) Run(loop driver.Handler) error {
	d.loop = loop
	loop(driver.Resumed{})
	if d.exiting || d.app == nil {
		return nil
	}
	return d.app.Run()
}

// RequestExit implements driver.Driver. Event delivery stops
// immediately; the native loop winds down when the window closes.
//
// TODO: forward the request to gogpu once its App grows a programmatic
// shutdown call, so Exit works without user interaction.
func (d *Driver) RequestExit(code int) {
	if d.exiting {
		return
	}
	d.exiting = true
	d.exitCode = code
}

// emit forwards a raw event unless the loop has exited.
func (d *Driver) emit(ev driver.Event) {
	if d.exiting || d.loop == nil {
		return
	}
	d.loop(ev)
}

// CreateWindow implements driver.Driver. gogpu couples the window to
// the application, so this constructs the application and wires its
// callbacks; the native loop starts later, from Run.
func (d *Driver) CreateWindow(cfg driver.WindowConfig) (driver.Window, error) {
	app := gogpuapp.NewApp(gogpuapp.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(int(cfg.Width), int(cfg.Height)).
		WithContinuousRender(true))

	d.app = app
	d.win = &window{drv: d, width: cfg.Width, height: cfg.Height}
	d.lastW = int(cfg.Width)
	d.lastH = int(cfg.Height)

	app.OnDraw(d.onDraw)
	app.OnClose(func() {
		d.emit(driver.CloseRequested{})
	})
	app.EventSource().OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		d.emit(driver.KeyboardInput{Pressed: true, Key: key, Resolved: true})
	})
	// TODO: wire cursor, button and wheel events when gogpu's
	// EventSource exposes pointer callbacks alongside OnKeyPress.

	return d.win, nil
}

// onDraw runs once per frame on the native loop. The draw context is
// bound for the duration so surface frames can reach it.
func (d *Driver) onDraw(dc *gogpuapp.Context) {
	if d.exiting {
		return
	}
	d.dc = dc
	defer func() { d.dc = nil }()

	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if w != d.lastW || h != d.lastH {
		d.lastW, d.lastH = w, h
		d.win.width, d.win.height = uint32(w), uint32(h)
		d.emit(driver.Resized{Width: uint32(w), Height: uint32(h)})
	}
	d.emit(driver.RedrawRequested{})
}

// CreateSurface implements driver.Driver.
func (d *Driver) CreateSurface(w driver.Window) (driver.Surface, error) {
	win, ok := w.(*window)
	if !ok || win != d.win {
		return nil, ErrNoWindow
	}
	return &surface{drv: d}, nil
}

// window is the driver's single native window.
type window struct {
	drv    *Driver
	width  uint32
	height uint32
}

func (w *window) InnerSize() (uint32, uint32) { return w.width, w.height }

// ScaleFactor reports 1: gogpu sizes are already physical pixels and
// no DPI query is exposed.
func (w *window) ScaleFactor() float64 { return 1 }

// RequestRedraw is a no-op; the driver runs gogpu in continuous render
// mode, so every vsync produces a frame.
func (w *window) RequestRedraw() {}

// Release is a no-op; gogpu tears the native window down when its loop
// ends.
func (w *window) Release() {}

// surface presents through the draw context of the current frame.
type surface struct {
	drv       *Driver
	destroyed bool
}

func (s *surface) Size() (uint32, uint32) {
	return s.drv.win.width, s.drv.win.height
}

// Resize is a no-op; gogpu resizes its swapchain with the window.
func (s *surface) Resize(w, h uint32) {}

func (s *surface) Format() gputypes.TextureFormat {
	if provider := s.drv.app.GPUContextProvider(); provider != nil {
		return provider.SurfaceFormat()
	}
	return gputypes.TextureFormatBGRA8Unorm
}

func (s *surface) DeviceIndex() int { return 0 }

func (s *surface) Destroy() { s.destroyed = true }

func (s *surface) AcquireFrame() (driver.Frame, error) {
	if s.destroyed {
		return nil, ErrNoWindow
	}
	dc := s.drv.dc
	if dc == nil {
		return nil, ErrNoFrame
	}
	return &frame{drv: s.drv, td: dc.AsTextureDrawer()}, nil
}

// frame wraps the frame's texture drawer. Present is implicit: gogpu
// presents when the draw callback returns.
type frame struct {
	drv *Driver
	td  gpucontext.TextureDrawer
}

func (f *frame) TextureCreator() driver.TextureCreator {
	creator := f.td.TextureCreator()
	if creator == nil {
		return nil
	}
	return creatorAdapter{creator}
}

func (f *frame) DrawTexture(tex any, x, y float32) error {
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return errors.New("gogpu: texture does not implement gpucontext.Texture")
	}
	return f.td.DrawTexture(gpuTex, x, y)
}

func (f *frame) Present() error { return nil }

// Poll pumps the device without blocking so deferred destruction can
// observe completed work.
func (f *frame) Poll() {
	if provider := f.drv.app.GPUContextProvider(); provider != nil {
		if dev, ok := provider.Device().(*wgpu.Device); ok {
			dev.Poll(wgpu.PollPoll)
		}
	}
}

type creatorAdapter struct {
	inner gpucontext.TextureCreator
}

func (c creatorAdapter) NewTextureFromRGBA(width, height int, data []byte) (any, error) {
	return c.inner.NewTextureFromRGBA(width, height, data)
}
