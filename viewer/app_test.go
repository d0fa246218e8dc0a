package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
	"obj-viewer/mesh"
)

type fakeBackend struct {
	meshes []*mesh.Mesh
}

func (f *fakeBackend) SetMesh(m *mesh.Mesh) error { f.meshes = append(f.meshes, m); return nil }
func (f *fakeBackend) HasMesh() bool              { return len(f.meshes) > 0 }
func (f *fakeBackend) BeginFrame(w, h int)        {}
func (f *fakeBackend) DrawMesh(view, proj, model mgl32.Mat4) {}
func (f *fakeBackend) Present()                   {}

type fakeSelector struct {
	path string
	ok   bool
}

func (f *fakeSelector) Select(filters []Filter) (string, bool) { return f.path, f.ok }

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const validOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func TestOpenFileReplacesMesh(t *testing.T) {
	backend := &fakeBackend{}
	app := NewApp(nil, backend, &fakeSelector{path: writeOBJ(t, validOBJ), ok: true})

	app.dispatch(core.Event{Kind: core.EventKeyDown, Key: core.KeyO})

	if len(backend.meshes) != 1 {
		t.Fatalf("expected 1 uploaded mesh, got %d", len(backend.meshes))
	}
	if backend.meshes[0].Empty() {
		t.Error("uploaded mesh should not be empty")
	}
}

func TestOpenFileCancelledIsNoop(t *testing.T) {
	backend := &fakeBackend{}
	app := NewApp(nil, backend, &fakeSelector{ok: false})

	app.dispatch(core.Event{Kind: core.EventKeyDown, Key: core.KeyO})

	if len(backend.meshes) != 0 {
		t.Errorf("cancelled selection must not upload, got %d uploads", len(backend.meshes))
	}
}

func TestReloadKeepsPreviousMeshOnFailure(t *testing.T) {
	backend := &fakeBackend{}
	app := NewApp(nil, backend, &fakeSelector{})
	if err := app.Reload(writeOBJ(t, validOBJ)); err != nil {
		t.Fatalf("initial reload: %v", err)
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "gone.obj")},
		{"parse abort", writeOBJ(t, "v 1 nope 3\n")},
		{"empty mesh", writeOBJ(t, "# only a comment\n")},
		{"faceless mesh", writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\n")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := app.Reload(tc.path); err == nil {
				t.Error("expected reload error")
			}
			if len(backend.meshes) != 1 {
				t.Errorf("failed reload must not upload, have %d uploads", len(backend.meshes))
			}
		})
	}
}

func TestEscapeAndQuitStopTheLoop(t *testing.T) {
	for _, ev := range []core.Event{
		{Kind: core.EventKeyDown, Key: core.KeyEscape},
		{Kind: core.EventQuit},
	} {
		app := NewApp(nil, &fakeBackend{}, &fakeSelector{})
		app.dispatch(ev)
		if !app.quit {
			t.Errorf("event %+v should stop the loop", ev)
		}
	}
}

func TestCameraEventsReachTheCamera(t *testing.T) {
	app := NewApp(nil, &fakeBackend{}, &fakeSelector{})
	app.dispatch(core.Event{Kind: core.EventScrollUp})
	if app.camera.Zoom != 4.5 {
		t.Errorf("scroll should zoom the camera, got %v", app.camera.Zoom)
	}
	app.dispatch(core.Event{Kind: core.EventKeyDown, Key: core.KeyDown})
	if app.camera.Zoom != 5.5 {
		t.Errorf("arrow key should zoom the camera, got %v", app.camera.Zoom)
	}
}
