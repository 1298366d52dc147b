package peck

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"
)

func TestRenderContextPanicsWhenCheckedIn(t *testing.T) {
	rc := &RenderContext{}
	defer func() {
		if recover() == nil {
			t.Error("use after check-in should panic")
		}
	}()
	rc.Fill(scene.NewCircleShape(10, 10, 5), scene.SolidBrush(gg.RGB(1, 0, 0)))
}

func TestRenderContextBuilderPanicsWhenCheckedIn(t *testing.T) {
	rc := &RenderContext{}
	rc.checkOut(scene.NewSceneBuilder(), newScreen(800, 600, 1))
	rc.checkIn()
	defer func() {
		if recover() == nil {
			t.Error("Builder() after check-in should panic")
		}
	}()
	rc.Builder()
}

func TestRenderContextScreenSurvivesCheckIn(t *testing.T) {
	rc := &RenderContext{}
	screen := newScreen(800, 600, 2)
	rc.checkOut(scene.NewSceneBuilder(), screen)
	rc.checkIn()
	// Screen is a plain snapshot; reading it is always safe.
	if rc.Screen() != screen {
		t.Errorf("Screen() = %+v, want %+v", rc.Screen(), screen)
	}
}

func TestRenderContextChaining(t *testing.T) {
	sc := scene.NewScene()
	rc := &RenderContext{}
	rc.checkOut(scene.NewSceneBuilderFrom(sc), newScreen(800, 600, 1))

	brush := scene.SolidBrush(gg.RGB(0, 1, 0))
	got := rc.
		Fill(scene.NewRectShape(0, 0, 100, 100), brush).
		Stroke(scene.NewLineShape(0, 0, 100, 100), brush, 2)
	if got != rc {
		t.Error("drawing methods should return the receiver for chaining")
	}
	rc.checkIn()

	if sc.Encoding().ShapeCount() != 2 {
		t.Errorf("ShapeCount() = %d, want 2", sc.Encoding().ShapeCount())
	}
}
