package peck

import (
	"os"

	"github.com/gogpu/gg/scene"

	"github.com/gogpu/peck/driver"
)

// Config holds window and loop options. The zero value is not useful;
// start from DefaultConfig and use the With methods.
type Config struct {
	title      string
	width      uint32
	height     uint32
	resizable  bool
	driverName string
}

// DefaultConfig returns the default configuration: a resizable
// 1044x800 window titled "Peck", using the highest-priority available
// windowing driver.
func DefaultConfig() Config {
	return Config{
		title:     "Peck",
		width:     1044,
		height:    800,
		resizable: true,
	}
}

// WithTitle sets the window title.
func (c Config) WithTitle(title string) Config {
	c.title = title
	return c
}

// WithSize sets the initial window size in physical pixels.
func (c Config) WithSize(width, height uint32) Config {
	c.width = width
	c.height = height
	return c
}

// WithResizable sets whether the window can be resized by the user.
func (c Config) WithResizable(resizable bool) Config {
	c.resizable = resizable
	return c
}

// WithDriver forces a specific windowing driver by registry name
// instead of automatic selection.
func (c Config) WithDriver(name string) Config {
	c.driverName = name
	return c
}

// RenderFunc draws one frame. The RenderContext is only valid for the
// duration of the call.
type RenderFunc[T any] func(data *T, rc *RenderContext)

// EventFunc reacts to a normalized window event. Set flow to exiting
// to stop the application.
type EventFunc[T any] func(data *T, ev Event, flow *ControlFlow)

// App owns the window, the surface and the event loop, and dispatches
// frames to the render callback. T is the caller's application state,
// threaded unchanged into every callback.
type App[T any] struct {
	data     T
	cfg      Config
	renderFn RenderFunc[T]
	eventFn  EventFunc[T]

	drv    driver.Driver
	state  *renderState
	screen Screen

	// cachedWin survives suspension so resume can reattach a surface
	// to the same window instead of creating a new one.
	cachedWin driver.Window

	// frag receives the callback's drawing each frame; composite is
	// what actually gets rasterized. Both are reused across frames.
	frag      *scene.Scene
	composite *scene.Scene
	rc        *RenderContext

	// renderers caches one frame renderer per surface device index.
	renderers map[int]*frameRenderer

	phase    loopPhase
	exitCode int
	exiting  bool
}

// renderState pairs a live surface with its window. The surface must
// always be destroyed before the window it was created from.
type renderState struct {
	surface driver.Surface
	window  driver.Window
}

func (s *renderState) destroySurface() driver.Window {
	s.surface.Destroy()
	return s.window
}

type loopPhase uint8

const (
	phaseUninitialized loopPhase = iota
	phaseActive
	phaseSuspended
	phaseTerminated
)

// NewApp creates an application around the caller's state. Nothing
// happens until Run.
func NewApp[T any](data T, cfg Config) *App[T] {
	return &App[T]{
		data:      data,
		cfg:       cfg,
		frag:      scene.NewScene(),
		composite: scene.NewScene(),
		rc:        &RenderContext{},
		renderers: make(map[int]*frameRenderer),
	}
}

// OnRender sets the per-frame draw callback.
func (a *App[T]) OnRender(fn RenderFunc[T]) *App[T] {
	a.renderFn = fn
	return a
}

// OnEvent sets the window event callback. Without one, CloseRequested
// exits with code 0 and every other event is ignored.
func (a *App[T]) OnEvent(fn EventFunc[T]) *App[T] {
	a.eventFn = fn
	return a
}

// Run starts the event loop and does not return: it exits the process
// with the loop's exit code once the loop ends. Must be called from
// the main goroutine on platforms that require it.
func (a *App[T]) Run() {
	var drv driver.Driver
	var err error
	if a.cfg.driverName != "" {
		drv, err = driver.NewByName(a.cfg.driverName)
	} else {
		drv, err = driver.New()
	}
	if err != nil {
		Logger().Error("no windowing driver", "error", err)
		os.Exit(1)
	}
	os.Exit(a.run(drv))
}

// run drives the loop against an explicit driver and returns the exit
// code instead of terminating the process.
func (a *App[T]) run(drv driver.Driver) int {
	a.drv = drv
	a.phase = phaseUninitialized
	a.exitCode = 0
	a.exiting = false

	if err := drv.Run(a.handle); err != nil {
		Logger().Error("event loop failed", "error", err)
		if !a.exiting {
			a.exitCode = 1
		}
	}
	a.shutdown()
	a.phase = phaseTerminated
	return a.exitCode
}

// handle is the raw event dispatcher handed to the driver.
func (a *App[T]) handle(raw driver.Event) {
	if a.exiting {
		return
	}
	switch ev := raw.(type) {
	case driver.Resumed:
		a.resume()
	case driver.Suspended:
		a.suspend()
	case driver.EventsCleared:
		if a.phase == phaseActive {
			a.state.window.RequestRedraw()
		}
	case driver.RedrawRequested:
		a.redraw()
	default:
		// Window events are ignored unless a render state exists.
		if a.phase == phaseActive {
			a.windowEvent(ev)
		}
	}
}

// resume creates (or reattaches) the render state. On first resume a
// window is created; after suspension the cached window is reused.
func (a *App[T]) resume() {
	if a.phase == phaseActive {
		return
	}

	win := a.cachedWin
	a.cachedWin = nil
	if win == nil {
		w, err := a.drv.CreateWindow(driver.WindowConfig{
			Title:     a.cfg.title,
			Width:     a.cfg.width,
			Height:    a.cfg.height,
			Resizable: a.cfg.resizable,
		})
		if err != nil {
			Logger().Error("window creation failed", "error", err)
			a.exit(1)
			return
		}
		win = w
	}

	sfc, err := a.drv.CreateSurface(win)
	if err != nil {
		Logger().Error("surface creation failed", "error", err)
		a.exit(1)
		return
	}

	pw, ph := win.InnerSize()
	a.screen = newScreen(float64(pw), float64(ph), win.ScaleFactor())
	a.state = &renderState{surface: sfc, window: win}
	a.phase = phaseActive
	win.RequestRedraw()
}

// suspend drops the surface but keeps the window for the next resume.
func (a *App[T]) suspend() {
	if a.phase != phaseActive {
		return
	}
	a.cachedWin = a.state.destroySurface()
	a.state = nil
	a.phase = phaseSuspended
}

// redraw runs the render callback and presents the result.
func (a *App[T]) redraw() {
	if a.phase != phaseActive || a.renderFn == nil {
		return
	}

	a.frag.Reset()
	// Build the fragment builder before installing the scale so the
	// factor is applied once, not squared through the builder's own
	// captured transform.
	builder := scene.NewSceneBuilderFrom(a.frag)
	s := float32(a.screen.Scale())
	a.frag.SetTransform(scene.ScaleAffine(s, s))

	a.rc.checkOut(builder, a.screen)
	a.renderFn(&a.data, a.rc)
	a.rc.checkIn()

	a.composite.Reset()
	a.composite.Encoding().Append(a.frag.Encoding())

	r := a.rendererFor(a.state.surface)
	if err := r.renderToSurface(a.state.surface, a.composite); err != nil {
		panic(err)
	}
}

// rendererFor returns the frame renderer for the surface's device,
// creating it on first use.
func (a *App[T]) rendererFor(sfc driver.Surface) *frameRenderer {
	idx := sfc.DeviceIndex()
	r, ok := a.renderers[idx]
	if !ok {
		r = newFrameRenderer()
		a.renderers[idx] = r
	}
	return r
}

// windowEvent normalizes a raw window event and hands it to the event
// callback, applying the default policy when no callback is set. Only
// called while Active, so a render state always exists.
func (a *App[T]) windowEvent(raw driver.Event) {
	switch ev := raw.(type) {
	case driver.Resized:
		if float64(ev.Width) == a.screen.physWidth && float64(ev.Height) == a.screen.physHeight {
			return
		}
		a.screen = newScreen(float64(ev.Width), float64(ev.Height), a.screen.Scale())
		a.state.surface.Resize(ev.Width, ev.Height)
		a.state.window.RequestRedraw()
	case driver.ScaleFactorChanged:
		a.screen = newScreen(float64(ev.Width), float64(ev.Height), ev.Scale)
		a.state.surface.Resize(ev.Width, ev.Height)
		a.state.window.RequestRedraw()
	}

	nev, ok := normalizeEvent(raw, a.screen)
	if !ok {
		return
	}

	var flow ControlFlow
	if a.eventFn != nil {
		a.eventFn(&a.data, nev, &flow)
	} else {
		DefaultEventPolicy(nev, &flow)
	}
	if flow.Exiting() {
		a.exit(flow.code)
	}
}

// exit records the exit code and asks the driver to stop its loop.
func (a *App[T]) exit(code int) {
	if a.exiting {
		return
	}
	a.exiting = true
	a.exitCode = code
	a.drv.RequestExit(code)
}

// shutdown tears down render state in dependency order: renderers,
// surface, window.
func (a *App[T]) shutdown() {
	for _, r := range a.renderers {
		r.close()
	}
	if a.state != nil {
		a.cachedWin = a.state.destroySurface()
		a.state = nil
	}
	if a.cachedWin != nil {
		a.cachedWin.Release()
		a.cachedWin = nil
	}
}
