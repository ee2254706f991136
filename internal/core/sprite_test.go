package core

import "testing"

func TestNewSpritePadsRows(t *testing.T) {
	sp := NewSprite(" /\\\n/__\\\n")

	if sp.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", sp.Width())
	}
	if sp.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", sp.Height())
	}
	if sp.At(3, 0) != ' ' {
		t.Errorf("short row should pad with space, got %q", sp.At(3, 0))
	}
	if sp.At(0, 1) != '/' {
		t.Errorf("At(0, 1) = %q, expected '/'", sp.At(0, 1))
	}
	if sp.At(-1, 0) != ' ' || sp.At(0, 9) != ' ' {
		t.Error("out-of-range At should return space")
	}
}
