// Command peckdemo shows an interactive peck window: a star that
// follows the cursor, grows and shrinks with the scroll wheel, and
// changes color on click. Close the window or press Space to quit.
//
// The gogpu driver currently forwards keyboard and close events only,
// so the cursor, wheel, and click interactions need a driver that
// emits pointer events (for example -driver=headless with a scripted
// queue); on gogpu the star stays centered until pointer support
// lands.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/peck"
	_ "github.com/gogpu/peck/driver/gogpu"
	_ "github.com/gogpu/peck/driver/headless"
)

type demo struct {
	cursorX float64
	cursorY float64
	radius  float64
	hue     int
}

var palette = []gg.RGBA{
	gg.RGB(0.95, 0.75, 0.2),
	gg.RGB(0.35, 0.75, 0.95),
	gg.RGB(0.9, 0.35, 0.45),
	gg.RGB(0.5, 0.9, 0.5),
}

func main() {
	var (
		title    = flag.String("title", "peckdemo", "window title")
		width    = flag.Uint("width", 1044, "window width in pixels")
		height   = flag.Uint("height", 800, "window height in pixels")
		drv      = flag.String("driver", "", "windowing driver name (default: automatic)")
		verbose  = flag.Bool("v", false, "enable debug logging")
		fixedWin = flag.Bool("fixed", false, "disable window resizing")
	)
	flag.Parse()

	if *verbose {
		peck.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := peck.DefaultConfig().
		WithTitle(*title).
		WithSize(uint32(*width), uint32(*height)).
		WithResizable(!*fixedWin)
	if *drv != "" {
		cfg = cfg.WithDriver(*drv)
	}

	app := peck.NewApp(demo{radius: 80}, cfg)

	app.OnRender(func(d *demo, rc *peck.RenderContext) {
		w, h := rc.Screen().Size()
		x, y := float32(d.cursorX), float32(d.cursorY)
		if d.cursorX == 0 && d.cursorY == 0 {
			x, y = float32(w/2), float32(h/2)
		}

		r := float32(d.radius)
		star := scene.NewStarShape(x, y, r, r*0.45, 5, 0)
		rc.Fill(star, scene.SolidBrush(palette[d.hue]))
		rc.Stroke(star, scene.SolidBrush(gg.RGB(1, 1, 1)), 2)

		border := scene.NewRectShape(4, 4, float32(w)-8, float32(h)-8)
		rc.Stroke(border, scene.SolidBrush(gg.RGB(0.3, 0.3, 0.3)), 1)
	})

	app.OnEvent(func(d *demo, ev peck.Event, flow *peck.ControlFlow) {
		switch ev := ev.(type) {
		case peck.CursorMoved:
			d.cursorX, d.cursorY = ev.X, ev.Y
		case peck.MouseWheel:
			d.radius += 8 * ev.Delta
			if d.radius < 16 {
				d.radius = 16
			}
		case peck.MouseInput:
			if ev.State == peck.Pressed && ev.Button == peck.ButtonLeft {
				d.hue = (d.hue + 1) % len(palette)
			}
		case peck.KeyboardInput:
			if ev.State == peck.Pressed && ev.Key == gpucontext.KeySpace {
				flow.Exit()
			}
		case peck.CloseRequested:
			flow.Exit()
		}
	})

	app.Run()
}
