// Package renderer ties the OpenGL backend to the viewer: it owns the GPU
// handle of the currently displayed mesh and draws it each frame.
package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
	"obj-viewer/internal/opengl"
	"obj-viewer/mesh"
)

// RenderEngine uploads meshes to the GPU once and draws the uploaded handle
// every frame. Swapping the mesh releases the old buffers.
type RenderEngine struct {
	gl      *opengl.Renderer
	window  *core.Window
	current *opengl.GPUMesh
}

// NewRenderEngine initialises the OpenGL backend against the window's context.
func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	backend, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create render engine: %w", err)
	}
	return &RenderEngine{gl: backend, window: window}, nil
}

// SetMesh uploads a mesh and makes it the one drawn each frame. The previous
// mesh's GPU buffers are released after the new upload succeeds.
func (e *RenderEngine) SetMesh(m *mesh.Mesh) error {
	if m == nil || m.Empty() {
		return fmt.Errorf("cannot upload empty mesh")
	}
	gpu := e.gl.Upload(m)
	if e.current != nil {
		e.gl.Release(e.current)
	}
	e.current = gpu
	return nil
}

// HasMesh reports whether a mesh is currently uploaded.
func (e *RenderEngine) HasMesh() bool {
	return e.current != nil && e.current.VertexCount > 0
}

// BeginFrame prepares the frame: viewport and background clear.
func (e *RenderEngine) BeginFrame(width, height int) {
	e.gl.SetViewport(width, height)
	e.gl.Clear(core.ColorBackground)
}

// DrawMesh renders the current mesh with the given camera transforms.
func (e *RenderEngine) DrawMesh(view, proj, model mgl32.Mat4) {
	if e.current == nil {
		return
	}
	mvp := proj.Mul4(view).Mul4(model)
	e.gl.Draw(e.current, mvp, model, core.ColorMaterial)
}

// Present swaps the window's buffers.
func (e *RenderEngine) Present() {
	e.window.SwapBuffers()
}

// Destroy releases the current mesh and the backend.
func (e *RenderEngine) Destroy() {
	if e.current != nil {
		e.gl.Release(e.current)
		e.current = nil
	}
	e.gl.Destroy()
}
