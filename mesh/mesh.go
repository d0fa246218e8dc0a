// Package mesh loads polygon meshes from Wavefront-style OBJ text and
// provides the triangle-level model the renderer draws from.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle references three vertices of the owning Mesh by index.
// Every index is guaranteed to be < len(Mesh.Vertices) at load time.
type Triangle [3]int

// Mesh owns one vertex sequence and one triangle sequence. Faces with more
// than three corners are fan-decomposed during load; no polygon entity
// survives past parse time.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
}

// Empty reports whether the mesh has nothing to draw. An empty mesh must not
// replace a previously loaded one; callers check this at the load boundary.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Vertices) == 0 || len(m.Triangles) == 0
}

// Bounds returns the axis-aligned extent of the vertex positions.
// Zero vectors for an empty mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if m == nil || len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Center returns the mean of all vertex positions.
func (m *Mesh) Center() mgl32.Vec3 {
	var c mgl32.Vec3
	if m == nil || len(m.Vertices) == 0 {
		return c
	}
	for _, p := range m.Vertices {
		c = c.Add(p)
	}
	return c.Mul(1 / float32(len(m.Vertices)))
}
