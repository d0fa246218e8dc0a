package main

import (
	"fmt"
	"os"

	"obj-viewer/core"
	"obj-viewer/mesh"
	"obj-viewer/renderer"
	"obj-viewer/viewer"
)

func main() {
	selector := viewer.NewPromptSelector()

	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		chosen, ok := selector.Select(viewer.OBJFilters)
		if !ok {
			fmt.Println("No file selected, exiting.")
			return
		}
		path = chosen
	}

	m, err := mesh.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load %q: %v\n", path, err)
		os.Exit(1)
	}
	if m.Empty() {
		fmt.Fprintf(os.Stderr, "No drawable geometry in %q\n", path)
		os.Exit(1)
	}
	printMeshStats(path, m)

	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create window: %v\n", err)
		os.Exit(1)
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize renderer: %v\n", err)
		os.Exit(1)
	}
	defer engine.Destroy()

	if err := engine.SetMesh(m); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to upload mesh: %v\n", err)
		os.Exit(1)
	}

	printControls()

	app := viewer.NewApp(window, engine, selector)
	app.Run()
}

func printMeshStats(path string, m *mesh.Mesh) {
	min, max := m.Bounds()
	center := m.Center()
	fmt.Printf("Loaded %q: %d vertices, %d triangles\n", path, len(m.Vertices), len(m.Triangles))
	fmt.Printf("  X range: [%.3f, %.3f]\n", min.X(), max.X())
	fmt.Printf("  Y range: [%.3f, %.3f]\n", min.Y(), max.Y())
	fmt.Printf("  Z range: [%.3f, %.3f]\n", min.Z(), max.Z())
	fmt.Printf("  Center:  (%.3f, %.3f, %.3f)\n", center.X(), center.Y(), center.Z())
}

func printControls() {
	fmt.Println("Controls:")
	fmt.Println("  Left drag    rotate")
	fmt.Println("  Scroll       zoom")
	fmt.Println("  Up/Down      zoom")
	fmt.Println("  O            open another .obj file")
	fmt.Println("  R            reset rotation")
	fmt.Println("  Escape       quit")
}
