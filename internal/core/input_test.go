package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionJump)

	if !f.JustPressed(ActionJump) {
		t.Error("JustPressed(Jump) should be true after Press")
	}
	if !f.IsHeld(ActionJump) {
		t.Error("IsHeld(Jump) should be true after Press")
	}
	if f.JustPressed(ActionRestart) {
		t.Error("JustPressed(Restart) should be false")
	}
}

func TestInputFrameHoldWithoutEdge(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionBoost)

	if f.JustPressed(ActionBoost) {
		t.Error("Hold should not create a press edge")
	}
	if !f.IsHeld(ActionBoost) {
		t.Error("IsHeld(Boost) should be true after Hold")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.JustPressed(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("zero-value frame should report nothing")
	}
	f.Press(ActionConfirm)
	if !f.JustPressed(ActionConfirm) {
		t.Error("Press on zero-value frame should allocate maps")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionJump)
	f.PointerDown(3, 4)

	clone := f.Clone()
	f.Clear()

	if f.JustPressed(ActionJump) || f.Pointer != nil {
		t.Error("Clear should reset presses and pointer")
	}
	if !clone.JustPressed(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
	if clone.Pointer == nil || clone.Pointer.X != 3 || clone.Pointer.Y != 4 {
		t.Errorf("Clone pointer = %+v, expected (3, 4)", clone.Pointer)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
