package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
	"obj-viewer/mesh"
)

// Projection constants of the fixed display surface.
const (
	FOVDegrees = 45.0
	NearPlane  = 0.1
	FarPlane   = 100.0

	targetFrameRate = 60
)

// MeshBackend is the drawable-surface collaborator: a mesh is handed over
// once per load and drawn by handle every frame. The render loop never
// touches GPU state directly.
type MeshBackend interface {
	// SetMesh uploads m and atomically replaces the active mesh. The
	// previous mesh stays active if the call fails.
	SetMesh(m *mesh.Mesh) error
	HasMesh() bool
	BeginFrame(width, height int)
	DrawMesh(view, proj, model mgl32.Mat4)
	Present()
}

// App owns the render loop: drain input, update camera, draw, present.
// Single-threaded; mesh replacement happens synchronously between frames.
type App struct {
	window   *core.Window
	backend  MeshBackend
	selector FileSelector
	camera   *Camera
	quit     bool
}

func NewApp(window *core.Window, backend MeshBackend, selector FileSelector) *App {
	return &App{
		window:   window,
		backend:  backend,
		selector: selector,
		camera:   NewCamera(),
	}
}

// Run drives the loop at the target frame rate until quit or escape.
func (a *App) Run() {
	const frameBudget = time.Second / targetFrameRate

	for !a.quit {
		start := time.Now()

		a.window.PollEvents()
		for _, ev := range a.window.Drain() {
			a.dispatch(ev)
		}
		if a.quit {
			break
		}

		width, height := a.window.GetFramebufferSize()
		a.backend.BeginFrame(width, height)

		if a.backend.HasMesh() {
			proj := mgl32.Perspective(
				mgl32.DegToRad(FOVDegrees),
				float32(width)/float32(height),
				NearPlane, FarPlane,
			)
			a.backend.DrawMesh(a.camera.ViewMatrix(), proj, a.camera.ModelMatrix())
		}

		a.backend.Present()

		if elapsed := time.Since(start); elapsed < frameBudget {
			time.Sleep(frameBudget - elapsed)
		}
	}
}

// dispatch routes one event: quit/open to the app, everything else to the
// camera state machine.
func (a *App) dispatch(ev core.Event) {
	switch ev.Kind {
	case core.EventQuit:
		a.quit = true
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyEscape:
			a.quit = true
		case core.KeyO:
			a.openFile()
		default:
			a.camera.Handle(ev)
		}
	default:
		a.camera.Handle(ev)
	}
}

// openFile runs the modal selector and reloads. The selector blocks the loop
// until the user responds; that pause is user-initiated and deliberate.
// Cancellation changes nothing.
func (a *App) openFile() {
	path, ok := a.selector.Select(OBJFilters)
	if !ok {
		return
	}
	if err := a.Reload(path); err != nil {
		fmt.Printf("Reload failed, keeping current mesh: %v\n", err)
	}
}

// Reload loads path and swaps it in as the active mesh. A failed or empty
// load leaves the previous mesh in place.
func (a *App) Reload(path string) error {
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}
	if m.Empty() {
		return fmt.Errorf("no geometry in %q", path)
	}
	if err := a.backend.SetMesh(m); err != nil {
		return err
	}
	fmt.Printf("Loaded %q: %d vertices, %d triangles\n",
		path, len(m.Vertices), len(m.Triangles))
	return nil
}
