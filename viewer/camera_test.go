package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
)

func TestCameraInitialState(t *testing.T) {
	c := NewCamera()
	if c.Zoom != 5.0 {
		t.Errorf("expected initial zoom 5.0, got %v", c.Zoom)
	}
	if c.RotX != 0 || c.RotY != 0 {
		t.Errorf("expected zero rotation, got (%v, %v)", c.RotX, c.RotY)
	}
	if c.dragging {
		t.Error("expected dragging to start false")
	}
}

func TestCameraDrag(t *testing.T) {
	c := NewCamera()
	c.Handle(core.Event{Kind: core.EventMouseDown, Button: core.MouseLeft, X: 100, Y: 100})
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 110, Y: 115})

	if c.RotX != 7.5 {
		t.Errorf("RotX: expected 7.5, got %v", c.RotX)
	}
	if c.RotY != 5.0 {
		t.Errorf("RotY: expected 5.0, got %v", c.RotY)
	}

	// Deltas accumulate from the last position, not the press position.
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 110, Y: 115})
	if c.RotX != 7.5 || c.RotY != 5.0 {
		t.Errorf("no-motion move changed rotation: (%v, %v)", c.RotX, c.RotY)
	}
}

func TestCameraMoveWithoutDragIsNoop(t *testing.T) {
	c := NewCamera()
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 50, Y: 50})
	if c.RotX != 0 || c.RotY != 0 {
		t.Errorf("move without drag changed rotation: (%v, %v)", c.RotX, c.RotY)
	}

	c.Handle(core.Event{Kind: core.EventMouseDown, Button: core.MouseLeft, X: 0, Y: 0})
	c.Handle(core.Event{Kind: core.EventMouseUp, Button: core.MouseLeft})
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 50, Y: 50})
	if c.RotX != 0 || c.RotY != 0 {
		t.Errorf("move after release changed rotation: (%v, %v)", c.RotX, c.RotY)
	}
}

func TestCameraRightButtonDoesNotDrag(t *testing.T) {
	c := NewCamera()
	c.Handle(core.Event{Kind: core.EventMouseDown, Button: core.MouseRight, X: 0, Y: 0})
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 10, Y: 10})
	if c.RotX != 0 || c.RotY != 0 {
		t.Errorf("right-button drag changed rotation: (%v, %v)", c.RotX, c.RotY)
	}
}

func TestCameraZoomSteps(t *testing.T) {
	c := NewCamera()
	c.Handle(core.Event{Kind: core.EventScrollUp})
	if c.Zoom != 4.5 {
		t.Errorf("scroll up: expected 4.5, got %v", c.Zoom)
	}
	c.Handle(core.Event{Kind: core.EventScrollDown})
	if c.Zoom != 5.0 {
		t.Errorf("scroll down: expected 5.0, got %v", c.Zoom)
	}
	c.Handle(core.Event{Kind: core.EventKeyDown, Key: core.KeyUp})
	if c.Zoom != 4.0 {
		t.Errorf("key up: expected 4.0, got %v", c.Zoom)
	}
	c.Handle(core.Event{Kind: core.EventKeyDown, Key: core.KeyDown})
	if c.Zoom != 5.0 {
		t.Errorf("key down: expected 5.0, got %v", c.Zoom)
	}
}

func TestCameraZoomNeverClamps(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 12; i++ {
		c.Handle(core.Event{Kind: core.EventKeyDown, Key: core.KeyUp})
	}
	if c.Zoom != -7.0 {
		t.Errorf("expected zoom -7.0 after 12 zoom-ins, got %v", c.Zoom)
	}
}

func TestCameraResetKeepsZoom(t *testing.T) {
	c := NewCamera()
	c.Handle(core.Event{Kind: core.EventMouseDown, Button: core.MouseLeft, X: 0, Y: 0})
	c.Handle(core.Event{Kind: core.EventMouseMove, X: 40, Y: 30})
	c.Handle(core.Event{Kind: core.EventKeyDown, Key: core.KeyUp})

	c.Handle(core.Event{Kind: core.EventKeyDown, Key: core.KeyR})
	if c.RotX != 0 || c.RotY != 0 {
		t.Errorf("reset: expected zero rotation, got (%v, %v)", c.RotX, c.RotY)
	}
	if c.Zoom != 4.0 {
		t.Errorf("reset must not touch zoom, got %v", c.Zoom)
	}
}

func TestCameraMatrices(t *testing.T) {
	c := NewCamera()
	wantView := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if c.ViewMatrix() != wantView {
		t.Error("view matrix does not match look-at of (0,0,zoom)")
	}
	if c.ModelMatrix() != mgl32.Ident4() {
		t.Error("zero rotation should give identity model matrix")
	}

	c.RotX, c.RotY = 30, 60
	want := mgl32.HomogRotate3DX(mgl32.DegToRad(30)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60)))
	if c.ModelMatrix() != want {
		t.Error("model matrix should compose X rotation before Y rotation")
	}
}
