package peck

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"

	"github.com/gogpu/peck/driver"
	"github.com/gogpu/peck/driver/headless"
)

func testConfig() Config {
	return DefaultConfig().WithTitle("test").WithSize(64, 64)
}

type shapesState struct {
	circles []*scene.CircleShape
}

func TestRunRendersSingleFrame(t *testing.T) {
	drv := headless.New()

	shapes := shapesState{}
	for i := 0; i < 10; i++ {
		shapes.circles = append(shapes.circles, scene.NewCircleShape(float32(i*5), 32, 2))
	}

	renders := 0
	app := NewApp(shapes, testConfig()).
		OnRender(func(s *shapesState, rc *RenderContext) {
			renders++
			w, h := rc.Screen().Size()
			if w != 64 || h != 64 {
				t.Errorf("Screen().Size() = (%v, %v), want (64, 64)", w, h)
			}
			brush := scene.SolidBrush(gg.White)
			for _, c := range s.circles {
				rc.Fill(c, brush)
			}
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if renders != 1 {
		t.Errorf("render callback ran %d times, want 1", renders)
	}
	if len(app.data.circles) != 10 {
		t.Errorf("frame cycle changed primitive count to %d, want 10", len(app.data.circles))
	}
	if drv.WindowCount() != 1 || drv.SurfaceCount() != 1 {
		t.Errorf("windows %d surfaces %d, want 1 and 1", drv.WindowCount(), drv.SurfaceCount())
	}
	if got := drv.LastSurface().FrameCount(); got != 1 {
		t.Errorf("presented %d frames, want 1", got)
	}
}

func TestRunPresentsPixels(t *testing.T) {
	drv := headless.New()

	app := NewApp(struct{}{}, testConfig()).
		OnRender(func(_ *struct{}, rc *RenderContext) {
			w, h := rc.Screen().Size()
			rc.Fill(scene.NewRectShape(0, 0, float32(w), float32(h)),
				scene.SolidBrush(gg.RGB(1, 1, 1)))
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	px := drv.LastSurface().PixelAt(32, 32)
	if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
		t.Errorf("center pixel = %+v, want opaque white", px)
	}
}

func TestCloseRequestedExitsByDefault(t *testing.T) {
	drv := headless.New()
	drv.Push(driver.CloseRequested{})

	app := NewApp(struct{}{}, testConfig())
	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if code, exited := drv.ExitCode(); !exited || code != 0 {
		t.Errorf("driver exit = (%d, %v), want (0, true)", code, exited)
	}
}

func TestEventCallbackOverridesDefaultPolicy(t *testing.T) {
	drv := headless.New()
	drv.Push(driver.CloseRequested{}, driver.CloseRequested{})

	closes := 0
	app := NewApp(struct{}{}, testConfig()).
		OnEvent(func(_ *struct{}, ev Event, flow *ControlFlow) {
			if _, ok := ev.(CloseRequested); ok {
				closes++
				if closes == 2 {
					flow.ExitWithCode(7)
				}
			}
		})

	if code := app.run(drv); code != 7 {
		t.Fatalf("run() = %d, want 7", code)
	}
	if closes != 2 {
		t.Errorf("saw %d CloseRequested events, want 2", closes)
	}
}

func TestResizeSuppressedWhenSizeUnchanged(t *testing.T) {
	drv := headless.New()
	drv.Push(
		driver.Resized{Width: 64, Height: 64},
		driver.Resized{Width: 128, Height: 96},
	)

	var resizes []Screen
	app := NewApp(struct{}{}, testConfig()).
		OnEvent(func(_ *struct{}, ev Event, _ *ControlFlow) {
			if r, ok := ev.(Resized); ok {
				resizes = append(resizes, r.Screen)
			}
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if len(resizes) != 1 {
		t.Fatalf("saw %d Resized events, want 1 (unchanged size suppressed)", len(resizes))
	}
	if w, h := resizes[0].Size(); w != 128 || h != 96 {
		t.Errorf("Resized screen = (%v, %v), want (128, 96)", w, h)
	}
	if w, h := drv.LastSurface().Size(); w != 128 || h != 96 {
		t.Errorf("surface size = (%d, %d), want (128, 96)", w, h)
	}
}

func TestScaleFactorChangeReplacesScreen(t *testing.T) {
	drv := headless.New()
	drv.Push(driver.ScaleFactorChanged{Scale: 2, Width: 128, Height: 128})

	var got *Screen
	app := NewApp(struct{}{}, testConfig()).
		OnEvent(func(_ *struct{}, ev Event, _ *ControlFlow) {
			if r, ok := ev.(Resized); ok {
				s := r.Screen
				got = &s
			}
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if got == nil {
		t.Fatal("no Resized event for scale factor change")
	}
	if got.Scale() != 2 {
		t.Errorf("Scale() = %v, want 2", got.Scale())
	}
	if w, h := got.Size(); w != 64 || h != 64 {
		t.Errorf("logical size = (%v, %v), want (64, 64)", w, h)
	}
}

func TestSuspendResumeReusesWindow(t *testing.T) {
	drv := headless.New()
	drv.Push(driver.Suspended{}, driver.RedrawRequested{}, driver.Resumed{})

	renders := 0
	app := NewApp(struct{}{}, testConfig()).
		OnRender(func(_ *struct{}, _ *RenderContext) {
			renders++
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if drv.WindowCount() != 1 {
		t.Errorf("created %d windows, want 1 (resume reuses the window)", drv.WindowCount())
	}
	if drv.SurfaceCount() != 2 {
		t.Errorf("created %d surfaces, want 2 (one per active span)", drv.SurfaceCount())
	}
	// The redraw scripted between suspend and resume must not render.
	if renders != 1 {
		t.Errorf("render callback ran %d times, want 1", renders)
	}
}

func TestWindowEventsIgnoredWhileSuspended(t *testing.T) {
	drv := headless.New()
	drv.Push(
		driver.Suspended{},
		driver.CloseRequested{},
		driver.CursorMoved{X: 10, Y: 10},
		driver.Resized{Width: 128, Height: 128},
		driver.Resumed{},
		driver.CloseRequested{},
	)

	var got []Event
	app := NewApp(struct{}{}, testConfig()).
		OnEvent(func(_ *struct{}, ev Event, flow *ControlFlow) {
			got = append(got, ev)
			DefaultEventPolicy(ev, flow)
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	// Only the CloseRequested delivered after resume may come through;
	// everything scripted while suspended must be dropped.
	if len(got) != 1 {
		t.Fatalf("event callback saw %d events, want 1: %v", len(got), got)
	}
	if _, ok := got[0].(CloseRequested); !ok {
		t.Errorf("event = %T, want CloseRequested from the active span", got[0])
	}
	if w, h := drv.LastSurface().Size(); w != 64 || h != 64 {
		t.Errorf("surface size = (%d, %d), want (64, 64): suspended resize must not apply", w, h)
	}
}

func TestCloseRequestedWhileSuspendedDoesNotExit(t *testing.T) {
	drv := headless.New()
	drv.Push(driver.Suspended{}, driver.CloseRequested{})

	app := NewApp(struct{}{}, testConfig())
	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if _, exited := drv.ExitCode(); exited {
		t.Error("suspended CloseRequested must not terminate the loop")
	}
}

func TestSurfaceCreationFailureExitsNonZero(t *testing.T) {
	drv := headless.New()
	drv.FailSurface = true

	app := NewApp(struct{}{}, testConfig()).
		OnRender(func(_ *struct{}, _ *RenderContext) {
			t.Error("render callback ran without a surface")
		})

	if code := app.run(drv); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRenderContextInvalidOutsideCallback(t *testing.T) {
	drv := headless.New()

	var leaked *RenderContext
	app := NewApp(struct{}{}, testConfig()).
		OnRender(func(_ *struct{}, rc *RenderContext) {
			leaked = rc
		})

	if code := app.run(drv); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	if leaked == nil {
		t.Fatal("render callback never ran")
	}
	defer func() {
		if recover() == nil {
			t.Error("retained RenderContext should panic when used after the callback")
		}
	}()
	leaked.Builder()
}
