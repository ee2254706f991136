package engine

import (
	"testing"
	"testing/fstest"

	"github.com/atbot/runner/internal/core"
)

func TestLoaderCompletesOnce(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": {Data: []byte("#! color=yellow\n(o)\n")},
		"b.txt": {Data: []byte("##\n##\n")},
	}
	l := NewLoader(fsys)
	l.Image("a", "a.txt")
	l.Image("b", "b.txt")

	calls := 0
	l.OnComplete(func() { calls++ })

	if err := l.LoadNext(); err != nil {
		t.Fatalf("LoadNext() failed: %v", err)
	}
	if loaded, total := l.Progress(); loaded != 1 || total != 2 {
		t.Errorf("Progress() = %d/%d, expected 1/2", loaded, total)
	}
	if calls != 0 || l.Done() {
		t.Error("loader should not complete before the last asset")
	}

	if err := l.LoadNext(); err != nil {
		t.Fatalf("LoadNext() failed: %v", err)
	}
	l.LoadNext()
	l.LoadNext()

	if calls != 1 {
		t.Errorf("completion fired %d times, expected once", calls)
	}
	if !l.Done() {
		t.Error("Done() should be true")
	}

	a := l.Get("a")
	if a.Color != core.ColorYellow {
		t.Errorf("asset colour = %v, expected yellow", a.Color)
	}
	if a.Sprite.Width() != 3 || a.Sprite.Height() != 1 {
		t.Errorf("asset size = %dx%d, expected 3x1", a.Sprite.Width(), a.Sprite.Height())
	}
	if l.Get("b").Sprite.Height() != 2 {
		t.Error("header-less asset should keep every line")
	}
}

func TestLoaderMissingAssetStillCompletes(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	l.Image("ghost", "ghost.txt")
	done := false
	l.OnComplete(func() { done = true })

	if err := l.LoadNext(); err == nil {
		t.Error("missing asset should return an error")
	}
	if !done {
		t.Error("loader should complete even when an asset fails")
	}
	if l.Get("ghost").Sprite == nil {
		t.Error("failed asset should get a placeholder sprite")
	}
}

func TestLoaderEmptyQueueCompletes(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	done := false
	l.OnComplete(func() { done = true })
	l.LoadNext()
	if !done {
		t.Error("empty loader should complete on first call")
	}
}

func TestParseAssetErrors(t *testing.T) {
	if _, err := ParseAsset("x", "#! color=plaid\nx"); err == nil {
		t.Error("unknown colour should fail")
	}
	if _, err := ParseAsset("x", "#! color=red\n"); err == nil {
		t.Error("header-only asset should fail")
	}
}

func TestGetUnknownReturnsPlaceholder(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	if l.Get("nope").Sprite.At(0, 0) != '?' {
		t.Error("unknown key should return the placeholder")
	}
}
