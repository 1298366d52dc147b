// Package peck is a thin windowed shell for the gg scene API.
//
// # Overview
//
// peck opens a window, owns the GPU presentation surface and the redraw
// loop, and calls back into user code twice: once per frame with a
// [RenderContext] for building that frame's scene, and once per window
// event with a normalized [Event]. Everything else (scene encoding,
// rasterization, device management, native event dispatch) is
// delegated to gg and to the windowing driver.
//
// # Goals
//
//   - Keep it simple: one window, one surface, one loop.
//   - Stay thin, so staying in sync with gg is cheap.
//
// # Non-goals
//
//   - Re-exposing everything gg offers. If you need that, use gg.
//   - Multiple windows.
//   - Text rendering.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/gg/scene"
//	    "github.com/gogpu/peck"
//	    _ "github.com/gogpu/peck/driver/gogpu" // register the windowing driver
//	)
//
//	type state struct{ radius float32 }
//
//	func main() {
//	    peck.NewApp(state{radius: 40}, peck.DefaultConfig().WithTitle("Hello")).
//	        OnRender(func(s *state, rc *peck.RenderContext) {
//	            w, h := rc.Screen().Size()
//	            circle := scene.NewCircleShape(float32(w/2), float32(h/2), s.radius)
//	            rc.Fill(circle, scene.SolidBrush(gg.Red))
//	        }).
//	        Run()
//	}
//
// Run blocks for the rest of the process lifetime and terminates the
// process when the window closes.
//
// # Coordinates
//
// Render callbacks draw in logical coordinates; peck applies the window
// scale factor when compositing the frame, and converts cursor positions
// back to logical coordinates in [CursorMoved] events. See [Screen].
//
// # Name
//
// A peck is the quickest possible kiss. So is this wrapper.
package peck
