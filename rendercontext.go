package peck

import (
	"github.com/gogpu/gg/scene"
)

// RenderContext is the per-frame drawing handle passed to the render
// callback. It pairs the frame's fragment builder with the Screen
// snapshot the frame is laid out against.
//
// A RenderContext is only valid for the duration of the callback it was
// passed to. The handle is checked out before the callback runs and
// checked back in when it returns; any use after that panics. Do not
// retain it.
type RenderContext struct {
	builder *scene.SceneBuilder
	screen  Screen
	active  bool
}

// Screen returns the screen snapshot for this frame.
func (rc *RenderContext) Screen() Screen {
	return rc.screen
}

// Builder returns the fragment scene builder for direct access to the
// full gg scene API (layers, clips, images, transforms).
func (rc *RenderContext) Builder() *scene.SceneBuilder {
	rc.check()
	return rc.builder
}

// Fill fills a shape with the given brush using the non-zero winding
// rule.
func (rc *RenderContext) Fill(shape scene.Shape, brush scene.Brush) *RenderContext {
	rc.check()
	rc.builder.Fill(shape, brush)
	return rc
}

// FillWith fills a shape with the given brush and fill style.
func (rc *RenderContext) FillWith(shape scene.Shape, brush scene.Brush, style scene.FillStyle) *RenderContext {
	rc.check()
	rc.builder.FillWith(shape, brush, style)
	return rc
}

// Stroke strokes a shape with the given brush and line width.
func (rc *RenderContext) Stroke(shape scene.Shape, brush scene.Brush, width float32) *RenderContext {
	rc.check()
	rc.builder.Stroke(shape, brush, width)
	return rc
}

// StrokeWith strokes a shape with the given brush and stroke style.
func (rc *RenderContext) StrokeWith(shape scene.Shape, brush scene.Brush, style *scene.StrokeStyle) *RenderContext {
	rc.check()
	rc.builder.StrokeWith(shape, brush, style)
	return rc
}

func (rc *RenderContext) check() {
	if !rc.active {
		panic("peck: RenderContext used outside its render callback")
	}
}

// checkOut arms the handle for one callback invocation.
func (rc *RenderContext) checkOut(builder *scene.SceneBuilder, screen Screen) {
	rc.builder = builder
	rc.screen = screen
	rc.active = true
}

// checkIn invalidates the handle once the callback returns.
func (rc *RenderContext) checkIn() {
	rc.builder = nil
	rc.active = false
}
