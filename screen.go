package peck

// Screen describes the presentation target for one frame: the surface
// size in raw device pixels and the window scale factor. A Screen is an
// immutable snapshot; resizes and scale-factor changes replace it
// wholesale and are reported through a [Resized] event.
type Screen struct {
	physWidth  float64
	physHeight float64
	scale      float64
}

// Size returns the logical screen size: physical pixels divided by the
// scale factor. Render callbacks should lay out against this size so
// content stays resolution independent.
func (s Screen) Size() (width, height float64) {
	return s.physWidth / s.scale, s.physHeight / s.scale
}

// PhysicalSize returns the surface size in raw device pixels.
func (s Screen) PhysicalSize() (width, height float64) {
	return s.physWidth, s.physHeight
}

// Scale returns the window scale factor. 2 = hidpi.
func (s Screen) Scale() float64 {
	return s.scale
}

// newScreen builds a snapshot, defaulting a non-positive scale to 1 so
// Size never divides by zero.
func newScreen(physWidth, physHeight, scale float64) Screen {
	if scale <= 0 {
		scale = 1
	}
	return Screen{physWidth: physWidth, physHeight: physHeight, scale: scale}
}
