package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
)

const (
	// ZoomInitial is the starting view distance along the camera axis.
	ZoomInitial = 5.0

	// DragSensitivity converts pixels of mouse drag to degrees of rotation.
	DragSensitivity = 0.5

	// ScrollZoomStep and KeyZoomStep are the zoom increments for the scroll
	// wheel and the arrow keys.
	ScrollZoomStep = 0.5
	KeyZoomStep    = 1.0
)

// Camera is the orbit camera state machine. Zoom and the rotation angles are
// mutated only through Handle; the render loop reads them every frame.
// Neither zoom nor rotation is clamped: zoom may go negative (the camera
// passes through the origin) and angles accumulate without wrapping.
type Camera struct {
	Zoom float32
	RotX float32 // accumulated degrees about the world X axis
	RotY float32 // accumulated degrees about the world Y axis

	dragging     bool
	lastX, lastY float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: ZoomInitial}
}

// Handle applies one input event to the camera state. Events the camera does
// not care about (quit, unbound keys) are ignored.
func (c *Camera) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventMouseDown:
		if ev.Button == core.MouseLeft {
			c.dragging = true
			c.lastX, c.lastY = ev.X, ev.Y
		}

	case core.EventMouseUp:
		if ev.Button == core.MouseLeft {
			c.dragging = false
		}

	case core.EventMouseMove:
		if !c.dragging {
			return
		}
		// Vertical drag orbits about X, horizontal drag about Y.
		c.RotX += float32(ev.Y-c.lastY) * DragSensitivity
		c.RotY += float32(ev.X-c.lastX) * DragSensitivity
		c.lastX, c.lastY = ev.X, ev.Y

	case core.EventScrollUp:
		c.Zoom -= ScrollZoomStep
	case core.EventScrollDown:
		c.Zoom += ScrollZoomStep

	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyUp:
			c.Zoom -= KeyZoomStep
		case core.KeyDown:
			c.Zoom += KeyZoomStep
		case core.KeyR:
			c.RotX, c.RotY = 0, 0
		}
	}
}

// ViewMatrix places the eye at (0, 0, Zoom) looking at the origin with +Y up.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, c.Zoom},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

// ModelMatrix rotates the scene by RotX about the world X axis, then RotY
// about the world Y axis, so the object orbits rather than the eye.
func (c *Camera) ModelMatrix() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(c.RotX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(c.RotY))
	return rx.Mul4(ry)
}
