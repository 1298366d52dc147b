package peck

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/peck/driver"
)

// Frame pipeline errors.
var (
	// ErrNoTextureCreator is returned when a frame cannot create the
	// presentation texture.
	ErrNoTextureCreator = errors.New("peck: frame provides no texture creator")
)

// baseColor is the fixed clear color every frame starts from.
var baseColor = gg.Black

// textureDestroyer is implemented by textures that hold GPU resources.
type textureDestroyer interface {
	Destroy()
}

// frameRenderer turns one composited scene into a presented frame on a
// driver surface. One renderer exists per surface device; it is created
// lazily the first time that device presents.
//
// The pipeline is: rasterize the scene into a pixmap, upload the pixmap
// into the presentation texture, draw the texture into the acquired
// frame, present, poll. The upload blocks until the device has consumed
// prior work, which is what makes texture recreation on resize safe.
type frameRenderer struct {
	soft   *scene.Renderer
	pix    *gg.Pixmap
	width  int
	height int

	// texture is created lazily from the first frame's TextureCreator.
	// oldTexture holds a texture awaiting deferred destruction after a
	// resize; it may still be referenced by in-flight GPU work until
	// the next upload completes.
	texture    any
	oldTexture any
}

func newFrameRenderer() *frameRenderer {
	return &frameRenderer{}
}

// renderToSurface rasterizes sc and presents it on sfc. Any error is
// unrecoverable for the frame; the caller decides whether it is
// unrecoverable for the process.
func (r *frameRenderer) renderToSurface(sfc driver.Surface, sc *scene.Scene) error {
	w32, h32 := sfc.Size()
	width, height := int(w32), int(h32)
	if width <= 0 || height <= 0 {
		return nil
	}
	if r.pix == nil || r.width != width || r.height != height {
		r.resize(width, height)
	}

	r.pix.Clear(baseColor)
	if err := r.soft.Render(r.pix, sc); err != nil {
		return fmt.Errorf("peck: scene render failed: %w", err)
	}

	frame, err := sfc.AcquireFrame()
	if err != nil {
		return fmt.Errorf("peck: acquire frame: %w", err)
	}
	if err := r.upload(frame); err != nil {
		return err
	}
	if err := frame.DrawTexture(r.texture, 0, 0); err != nil {
		return fmt.Errorf("peck: draw texture: %w", err)
	}
	if err := frame.Present(); err != nil {
		return fmt.Errorf("peck: present: %w", err)
	}
	frame.Poll()
	return nil
}

// resize replaces the pixmap and rasterizer and parks the current
// texture for deferred destruction.
func (r *frameRenderer) resize(width, height int) {
	if r.texture != nil {
		if r.oldTexture != nil {
			destroyTexture(r.oldTexture)
		}
		r.oldTexture = r.texture
		r.texture = nil
	}
	r.pix = gg.NewPixmap(width, height)
	r.soft = scene.NewRenderer(width, height)
	r.width = width
	r.height = height
}

// upload moves the rasterized pixels into the presentation texture,
// creating it on first use.
func (r *frameRenderer) upload(frame driver.Frame) error {
	data := r.pix.Data()

	if r.texture == nil {
		creator := frame.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		tex, err := creator.NewTextureFromRGBA(r.width, r.height, data)
		if err != nil {
			return fmt.Errorf("peck: texture creation failed: %w", err)
		}
		// Pixmap data is premultiplied alpha; mark the texture so the
		// platform picks the matching blend pipeline.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		r.texture = tex

		// The creation upload waited for the device, so the parked
		// texture is no longer referenced and can go now.
		if r.oldTexture != nil {
			destroyTexture(r.oldTexture)
			r.oldTexture = nil
		}
		return nil
	}

	if up, ok := r.texture.(gpucontext.TextureUpdater); ok {
		if err := up.UpdateData(data); err != nil {
			return fmt.Errorf("peck: texture update failed: %w", err)
		}
	}
	return nil
}

// close releases the renderer's textures.
func (r *frameRenderer) close() {
	if r.oldTexture != nil {
		destroyTexture(r.oldTexture)
		r.oldTexture = nil
	}
	if r.texture != nil {
		destroyTexture(r.texture)
		r.texture = nil
	}
}

func destroyTexture(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
