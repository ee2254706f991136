package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atbot/runner/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump},
		{"right boosts", tea.KeyMsg{Type: tea.KeyRight}, core.ActionBoost},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, actionScreenshot},
		{"unbound key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestPressAndHold(t *testing.T) {
	km := NewKeyMapper()
	start := time.Unix(0, 0)

	frame := core.NewInputFrame()
	km.Press(core.ActionBoost, &frame, start)
	if !frame.JustPressed(core.ActionBoost) || !frame.IsHeld(core.ActionBoost) {
		t.Fatal("first press should be pressed and held")
	}

	frame.Clear()
	km.ApplyHolds(&frame, start.Add(300*time.Millisecond))
	if !frame.IsHeld(core.ActionBoost) {
		t.Error("boost should still be held inside the hold window")
	}
	if frame.JustPressed(core.ActionBoost) {
		t.Error("a hold must not produce a press edge")
	}

	frame.Clear()
	km.ApplyHolds(&frame, start.Add(time.Second))
	if frame.IsHeld(core.ActionBoost) {
		t.Error("boost should be released after the hold window")
	}
}

func TestAutoRepeatIsNotAPress(t *testing.T) {
	km := NewKeyMapper()
	start := time.Unix(0, 0)

	frame := core.NewInputFrame()
	km.Press(core.ActionJump, &frame, start)
	frame.Clear()

	km.Press(core.ActionJump, &frame, start.Add(30*time.Millisecond))
	if frame.JustPressed(core.ActionJump) {
		t.Error("auto-repeat 30ms later should not be a new press")
	}
	if !frame.IsHeld(core.ActionJump) {
		t.Error("auto-repeat should keep the key held")
	}

	frame.Clear()
	km.Press(core.ActionJump, &frame, start.Add(250*time.Millisecond))
	if !frame.JustPressed(core.ActionJump) {
		t.Error("a second tap 220ms later should be a new press")
	}
}

func TestPressIgnoresFrontendActions(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	now := time.Now()

	for _, a := range []core.Action{core.ActionNone, core.ActionQuit, actionScreenshot} {
		km.Press(a, &frame, now)
	}
	if len(frame.Pressed) != 0 || len(frame.Held) != 0 {
		t.Errorf("frame = %+v, expected empty", frame)
	}
}
