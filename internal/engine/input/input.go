// Package input handles SDL2 input events and turns them into per-frame
// character input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/arena/internal/engine/character"
	"github.com/Faultbox/arena/pkg/math"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	WheelY int
	Button uint8
}

// Bindings maps controls to scancodes and the look mouse button.
type Bindings struct {
	Forward sdl.Scancode
	Back    sdl.Scancode
	Left    sdl.Scancode
	Right   sdl.Scancode
	Jump    sdl.Scancode
	Quit    sdl.Scancode
	Look    uint8
}

// DefaultBindings returns WASD movement, space to jump and the left mouse
// button to look.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: sdl.SCANCODE_W,
		Back:    sdl.SCANCODE_S,
		Left:    sdl.SCANCODE_A,
		Right:   sdl.SCANCODE_D,
		Jump:    sdl.SCANCODE_SPACE,
		Quit:    sdl.SCANCODE_ESCAPE,
		Look:    sdl.BUTTON_LEFT,
	}
}

// Input handles all input processing.
type Input struct {
	bindings Bindings
	events   []Event

	held      map[sdl.Scancode]bool
	lookHeld  bool
	lookDelta math.Vec2
	quit      bool
}

// New creates a new input handler.
func New(bindings Bindings) *Input {
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
		held:     make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.beginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.apply(Event{Type: EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.apply(Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.apply(Event{
					Type:   EventKeyDown,
					Key:    e.Keysym.Scancode,
					Repeat: e.Repeat != 0,
				})
			} else if e.Type == sdl.KEYUP {
				i.apply(Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.apply(Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.apply(Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.apply(Event{
					Type:   EventMouseUp,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}

		case *sdl.MouseWheelEvent:
			i.apply(Event{
				Type:   EventMouseWheel,
				WheelY: int(e.Y),
			})
		}
	}

	return i.quit
}

func (i *Input) beginFrame() {
	i.events = i.events[:0] // Clear previous events
	i.lookDelta = math.Vec2{}
}

// apply records an event and updates held state.
func (i *Input) apply(e Event) {
	i.events = append(i.events, e)

	switch e.Type {
	case EventQuit:
		i.quit = true
	case EventKeyDown:
		i.held[e.Key] = true
		if e.Key == i.bindings.Quit {
			i.quit = true
		}
	case EventKeyUp:
		delete(i.held, e.Key)
	case EventMouseDown:
		if e.Button == i.bindings.Look {
			i.lookHeld = true
		}
	case EventMouseUp:
		if e.Button == i.bindings.Look {
			i.lookHeld = false
		}
	case EventMouseMove:
		if i.lookHeld {
			i.lookDelta.X += float32(e.DeltaX)
			i.lookDelta.Y += float32(e.DeltaY)
		}
	}
}

// Character returns this frame's control snapshot. Jump is true only on the
// frame the jump key went down; held look accumulates pointer motion.
func (i *Input) Character() character.Input {
	b := i.bindings
	return character.Input{
		Forward:   i.held[b.Forward],
		Back:      i.held[b.Back],
		Left:      i.held[b.Left],
		Right:     i.held[b.Right],
		Jump:      i.IsKeyPressed(b.Jump),
		Look:      i.lookHeld,
		LookDelta: i.lookDelta,
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame. Auto-repeat
// does not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}
