package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionBoost          // D, Right - run faster while held
	ActionConfirm        // Enter - start from the menu
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionBoost:
		return "Boost"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer-down event in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame is the input state for one simulation tick.
//
// Pressed holds edge events (the key went down during this frame); Held
// holds level state (the key is considered down). A pressed action is
// always held as well.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press records a press edge for the action.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks the action as held for this frame without a press edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// PointerDown records a pointer press at screen cell (x, y).
func (f *InputFrame) PointerDown(x, y int) {
	f.Pointer = &Pointer{X: x, Y: y}
}

// JustPressed returns true if the action went down during this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action is currently down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
