package core

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// EventKind identifies one of the input events the render loop drains each
// frame. Events are consumed once and never stored.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventScrollUp
	EventScrollDown
)

// Event carries the payload for one input event. Key is set for KeyDown,
// Button for MouseDown/MouseUp, X/Y for MouseDown and MouseMove.
type Event struct {
	Kind   EventKind
	Key    int
	Button int
	X, Y   float64
}

// installInputCallbacks wires the GLFW callbacks into the window's event
// queue. Called once from NewWindow.
func (w *Window) installInputCallbacks() {
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		w.events = append(w.events, Event{Kind: EventKeyDown, Key: int(key)})
	})

	w.Handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		switch action {
		case glfw.Press:
			w.events = append(w.events, Event{Kind: EventMouseDown, Button: int(button), X: x, Y: y})
		case glfw.Release:
			w.events = append(w.events, Event{Kind: EventMouseUp, Button: int(button)})
		}
	})

	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, Event{Kind: EventMouseMove, X: x, Y: y})
	})

	w.Handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if yoff > 0 {
			w.events = append(w.events, Event{Kind: EventScrollUp})
		} else if yoff < 0 {
			w.events = append(w.events, Event{Kind: EventScrollDown})
		}
	})
}

// Drain returns the events accumulated since the last call and clears the
// queue. A Quit event is appended when the window close flag is set, so the
// caller sees window-close and escape through the same channel.
func (w *Window) Drain() []Event {
	events := w.events
	w.events = nil
	if w.Handle.ShouldClose() {
		events = append(events, Event{Kind: EventQuit})
	}
	return events
}
