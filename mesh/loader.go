package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Load parses a Wavefront .obj file into a Mesh of vertices and triangles.
//
// Recognized lines are "v x y z" (extra tokens ignored) and "f" with three or
// more references in any of the forms "i", "i/t", "i//n", "i/t/n" — only the
// position index is used, converted from 1-based to 0-based. Blank lines,
// "#" comments, and every other leading token (vt, vn, o, g, s, mtllib,
// usemtl, ...) are skipped without tracking any state.
//
// A malformed numeric token aborts the whole load with an error; partial
// results are discarded. Faces that resolve to fewer than three indices, or
// that reference a vertex outside the file's vertex range, are dropped whole
// and never become triangles.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(f *os.File, path string) (*Mesh, error) {
	m := &Mesh{}

	// Faces are held back until the full vertex sequence is known so that
	// forward references can be range-checked before any Triangle exists.
	var faces [][]int

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: vertex needs 3 coordinates, got %d", path, lineNo, len(fields)-1)
			}
			var p mgl32.Vec3
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[1+i], 32)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: bad vertex coordinate %q: %w", path, lineNo, fields[1+i], err)
				}
				p[i] = float32(v)
			}
			m.Vertices = append(m.Vertices, p)

		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			if len(face) < 3 {
				continue // silently dropped
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj %q: %w", path, err)
	}

	for _, face := range faces {
		if !indicesInRange(face, len(m.Vertices)) {
			continue
		}
		m.Triangles = append(m.Triangles, Triangulate(face)...)
	}

	return m, nil
}

// parseFace resolves each face reference token to a 0-based position index.
// Texture and normal references after the first "/" are discarded; a token
// whose position component is empty contributes nothing to the face.
func parseFace(tokens []string) ([]int, error) {
	var face []int
	for _, tok := range tokens {
		idxStr, _, _ := strings.Cut(tok, "/")
		if idxStr == "" {
			continue
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("bad face index %q: %w", tok, err)
		}
		face = append(face, idx-1)
	}
	return face, nil
}

// Triangulate fan-decomposes a polygon into len(face)-2 triangles anchored at
// the first index. Assumes convexity and planarity; a 3-index face passes
// through as a single triangle.
func Triangulate(face []int) []Triangle {
	if len(face) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(face)-2)
	for i := 1; i+1 < len(face); i++ {
		tris = append(tris, Triangle{face[0], face[i], face[i+1]})
	}
	return tris
}

func indicesInRange(face []int, vertCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertCount {
			return false
		}
	}
	return true
}
