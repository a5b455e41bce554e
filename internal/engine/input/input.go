// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKey
	// EventDrag is motion while the left button is held.
	EventDrag
	// EventClick is a right button press.
	EventClick
	EventWheel
)

// Event is one processed input event. Only the fields of its Type are set.
type Event struct {
	Type EventType

	Key sdl.Scancode

	// Width and Height for EventResize.
	Width, Height int

	// X and Y are the pointer position for EventClick, DX and DY the motion
	// for EventDrag, in window pixels.
	X, Y   int
	DX, DY int

	Wheel float32
}

// Input collects the events of one frame.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL queue. It returns true when the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.translate(event) {
			return true
		}
	}
	return false
}

func (i *Input) translate(event sdl.Event) (quit bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)})
		}

	case *sdl.KeyboardEvent:
		// auto-repeat would toggle modes several times per press
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			i.events = append(i.events, Event{Type: EventKey, Key: e.Keysym.Scancode})
		}

	case *sdl.MouseButtonEvent:
		switch {
		case e.Button == sdl.BUTTON_LEFT:
			i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
		case e.Button == sdl.BUTTON_RIGHT && e.Type == sdl.MOUSEBUTTONDOWN:
			i.events = append(i.events, Event{Type: EventClick, X: int(e.X), Y: int(e.Y)})
		}

	case *sdl.MouseMotionEvent:
		if i.dragging {
			i.events = append(i.events, Event{Type: EventDrag, DX: int(e.XRel), DY: int(e.YRel)})
		}

	case *sdl.MouseWheelEvent:
		wheel := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		i.events = append(i.events, Event{Type: EventWheel, Wheel: wheel})
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
