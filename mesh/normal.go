package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// fallbackNormal is returned for degenerate (zero-area) triangles.
var fallbackNormal = mgl32.Vec3{0, 0, 1}

// FaceNormal computes the unit flat normal of the triangle (v0, v1, v2).
// Winding order of the source face determines the sign; no winding
// correction is applied. Collinear vertices yield (0, 0, 1).
func FaceNormal(v0, v1, v2 mgl32.Vec3) mgl32.Vec3 {
	a := v1.Sub(v0)
	b := v2.Sub(v0)
	n := a.Cross(b)
	length := n.Len()
	if length == 0 {
		return fallbackNormal
	}
	return n.Mul(1 / length)
}
