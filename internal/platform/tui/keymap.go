package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atbot/runner/internal/core"
)

// defaultHoldWindow is how long a key counts as held after its last press.
// Terminals report no key releases, only presses and auto-repeat, so a held
// key is one that keeps repeating.
const defaultHoldWindow = 600 * time.Millisecond

// repeatWindow separates auto-repeat from a fresh press. Presses of the same
// key closer together than this are repeats and only extend the hold.
const repeatWindow = 60 * time.Millisecond

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Jump       key.Binding
	Boost      key.Binding
	Start      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Boost, k.Start, k.Restart, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Boost},
		{k.Start, k.Restart, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "jump"),
		),
		Boost: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "run fast"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// actionScreenshot is a frontend-only action; games never see it.
const actionScreenshot core.Action = -1

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// track of which actions count as held.
type KeyMapper struct {
	keys       KeyMap
	holdWindow time.Duration
	lastPress  map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys:       DefaultKeyMap(),
		holdWindow: defaultHoldWindow,
		lastPress:  make(map[core.Action]time.Time),
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Screenshot):
		return actionScreenshot
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump
	case key.Matches(msg, km.keys.Boost):
		return core.ActionBoost
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// Press records a press of the action in the frame. Auto-repeat of a held
// key is recorded as a hold, not as another press.
func (km *KeyMapper) Press(a core.Action, frame *core.InputFrame, now time.Time) {
	if a == core.ActionNone || a == core.ActionQuit || a == actionScreenshot {
		return
	}
	last, seen := km.lastPress[a]
	km.lastPress[a] = now
	if seen && now.Sub(last) < repeatWindow {
		frame.Hold(a)
		return
	}
	frame.Press(a)
}

// ApplyHolds marks every action pressed within the hold window as held.
func (km *KeyMapper) ApplyHolds(frame *core.InputFrame, now time.Time) {
	for a, at := range km.lastPress {
		if now.Sub(at) <= km.holdWindow {
			frame.Hold(a)
		} else {
			delete(km.lastPress, a)
		}
	}
}
