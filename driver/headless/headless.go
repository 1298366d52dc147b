// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/peck/driver"
)

// Name is the registry name of the headless driver.
const Name = "headless"

// Priority is deliberately low so any real windowing driver wins
// automatic selection.
const Priority = 10

func init() {
	driver.Register(Name, Priority, func() (driver.Driver, error) {
		return New(), nil
	}, func() bool { return true })
}

// Headless driver errors.
var (
	// ErrSurfaceFailed is returned by CreateSurface when failure
	// injection is enabled.
	ErrSurfaceFailed = errors.New("headless: surface creation failed")

	// ErrSurfaceDestroyed is returned when a frame is acquired from a
	// destroyed surface.
	ErrSurfaceDestroyed = errors.New("headless: surface destroyed")
)

// Driver replays scripted events through an event loop handler. Push
// the script before Run; Run delivers Resumed, then the script in
// order, then returns.
type Driver struct {
	queue []driver.Event

	// FailSurface makes every CreateSurface call return
	// ErrSurfaceFailed.
	FailSurface bool

	windows   []*Window
	surfaces  []*Surface
	exiting   bool
	exitCode  int
	hasExited bool
}

// New creates a headless driver with an empty script.
func New() *Driver {
	return &Driver{}
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Push appends events to the script. Only meaningful before Run.
func (d *Driver) Push(evs ...driver.Event) {
	d.queue = append(d.queue, evs...)
}

// Run delivers a synthetic Resumed event followed by the scripted
// events. Delivery stops early if RequestExit is called. Events
// enqueued during delivery (window redraw requests) are delivered in
// turn.
func (d *Driver) Run(loop driver.Handler) error {
	d.queue = append([]driver.Event{driver.Resumed{}}, d.queue...)
	for len(d.queue) > 0 && !d.exiting {
		ev := d.queue[0]
		d.queue = d.queue[1:]
		loop(ev)
	}
	return nil
}

// RequestExit implements driver.Driver. The first call wins.
func (d *Driver) RequestExit(code int) {
	if d.hasExited {
		return
	}
	d.hasExited = true
	d.exiting = true
	d.exitCode = code
}

// ExitCode reports the code passed to RequestExit, and whether
// RequestExit was called at all.
func (d *Driver) ExitCode() (int, bool) {
	return d.exitCode, d.hasExited
}

// WindowCount reports how many windows were created over the driver's
// lifetime.
func (d *Driver) WindowCount() int { return len(d.windows) }

// SurfaceCount reports how many surfaces were created over the
// driver's lifetime.
func (d *Driver) SurfaceCount() int { return len(d.surfaces) }

// LastSurface returns the most recently created surface, or nil.
func (d *Driver) LastSurface() *Surface {
	if len(d.surfaces) == 0 {
		return nil
	}
	return d.surfaces[len(d.surfaces)-1]
}

// CreateWindow implements driver.Driver.
func (d *Driver) CreateWindow(cfg driver.WindowConfig) (driver.Window, error) {
	w := &Window{drv: d, width: cfg.Width, height: cfg.Height, scale: 1}
	if w.width == 0 {
		w.width = 1
	}
	if w.height == 0 {
		w.height = 1
	}
	d.windows = append(d.windows, w)
	return w, nil
}

// CreateSurface implements driver.Driver.
func (d *Driver) CreateSurface(w driver.Window) (driver.Surface, error) {
	if d.FailSurface {
		return nil, ErrSurfaceFailed
	}
	win := w.(*Window)
	s := &Surface{width: win.width, height: win.height}
	d.surfaces = append(d.surfaces, s)
	return s, nil
}

// Window is an in-memory window. SetScale can be used before Run to
// simulate a high-DPI display.
type Window struct {
	drv    *Driver
	width  uint32
	height uint32
	scale  float64

	redraws  int
	released bool
}

// SetScale sets the reported scale factor.
func (w *Window) SetScale(scale float64) { w.scale = scale }

// InnerSize implements driver.Window.
func (w *Window) InnerSize() (uint32, uint32) { return w.width, w.height }

// ScaleFactor implements driver.Window.
func (w *Window) ScaleFactor() float64 { return w.scale }

// RequestRedraw implements driver.Window by enqueuing a
// RedrawRequested event. Redundant requests coalesce: a second request
// while one is already pending is dropped, matching compositor
// behavior.
func (w *Window) RequestRedraw() {
	for _, ev := range w.drv.queue {
		if _, ok := ev.(driver.RedrawRequested); ok {
			return
		}
	}
	w.redraws++
	w.drv.queue = append(w.drv.queue, driver.RedrawRequested{})
}

// RedrawCount reports how many redraw requests were actually enqueued.
func (w *Window) RedrawCount() int { return w.redraws }

// Release implements driver.Window.
func (w *Window) Release() { w.released = true }

// Released reports whether Release has been called.
func (w *Window) Released() bool { return w.released }

// Surface renders into a retained RGBA buffer.
type Surface struct {
	width     uint32
	height    uint32
	destroyed bool

	frames int
	last   *texture
}

// Size implements driver.Surface.
func (s *Surface) Size() (uint32, uint32) { return s.width, s.height }

// Resize implements driver.Surface.
func (s *Surface) Resize(w, h uint32) {
	s.width = w
	s.height = h
}

// Format implements driver.Surface.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// DeviceIndex implements driver.Surface. All headless surfaces share
// one software device.
func (s *Surface) DeviceIndex() int { return 0 }

// Destroyed reports whether Destroy has been called.
func (s *Surface) Destroyed() bool { return s.destroyed }

// Destroy implements driver.Surface.
func (s *Surface) Destroy() { s.destroyed = true }

// AcquireFrame implements driver.Surface.
func (s *Surface) AcquireFrame() (driver.Frame, error) {
	if s.destroyed {
		return nil, ErrSurfaceDestroyed
	}
	return &frame{surface: s}, nil
}

// FrameCount reports how many frames were presented.
func (s *Surface) FrameCount() int { return s.frames }

// Snapshot returns the last presented frame as an image, or nil if
// nothing has been presented.
func (s *Surface) Snapshot() *image.RGBA {
	if s.last == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, s.last.width, s.last.height))
	copy(img.Pix, s.last.data)
	return img
}

// PixelAt returns the last presented color at (x, y).
func (s *Surface) PixelAt(x, y int) color.RGBA {
	if s.last == nil {
		return color.RGBA{}
	}
	off := (y*s.last.width + x) * 4
	d := s.last.data
	return color.RGBA{R: d[off], G: d[off+1], B: d[off+2], A: d[off+3]}
}

// frame is one acquired presentation slot.
type frame struct {
	surface *Surface
	drawn   *texture
}

func (f *frame) TextureCreator() driver.TextureCreator {
	return creator{}
}

func (f *frame) DrawTexture(tex any, x, y float32) error {
	t, ok := tex.(*texture)
	if !ok {
		return errors.New("headless: foreign texture")
	}
	f.drawn = t
	return nil
}

func (f *frame) Present() error {
	f.surface.frames++
	f.surface.last = f.drawn
	return nil
}

func (f *frame) Poll() {}

type creator struct{}

func (creator) NewTextureFromRGBA(width, height int, data []byte) (any, error) {
	t := &texture{width: width, height: height, data: make([]byte, len(data))}
	copy(t.data, data)
	return t, nil
}

// texture is a software texture backed by a byte slice.
type texture struct {
	width         int
	height        int
	data          []byte
	premultiplied bool
	destroyed     bool
}

func (t *texture) UpdateData(data []byte) error {
	if t.destroyed {
		return errors.New("headless: texture destroyed")
	}
	copy(t.data, data)
	return nil
}

func (t *texture) SetPremultiplied(p bool) { t.premultiplied = p }

func (t *texture) Destroy() { t.destroyed = true }
