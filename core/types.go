package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}

	// Background and material colors of the viewer.
	ColorBackground = Color{1.0, 1.0, 0.4, 1.0}
	ColorMaterial   = Color{0.6, 0.5, 0.0, 1.0}
)

// Vertex is the GPU vertex layout: position plus flat per-triangle normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}
