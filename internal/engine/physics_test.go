package engine

import "testing"

func newTestWorld() (*World, *Queue) {
	q := NewQueue()
	w := NewWorld(WorldConfig{Width: 800, Height: 400, FloorY: 350, Gravity: 1000}, q)
	return w, q
}

func playerSpec() BodySpec {
	return BodySpec{
		Tag: "player", X: 100, Y: 300, W: 50, H: 60,
		AllowGravity: true, CollideWorldBounds: true,
	}
}

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(1.0 / 60)
	}
}

func TestWorldGravityLandsOnFloor(t *testing.T) {
	w, _ := newTestWorld()
	p := w.Add(playerSpec())

	if p.OnGround() {
		t.Fatal("player should not touch ground before the first step")
	}

	stepN(w, 120)

	if !p.OnGround() {
		t.Error("player should rest on the floor")
	}
	if p.Y+p.H != 350 {
		t.Errorf("player bottom = %v, expected floor 350", p.Y+p.H)
	}
	if p.VY != 0 {
		t.Errorf("resting player VY = %v, expected 0", p.VY)
	}
}

func TestWorldJumpLeavesGround(t *testing.T) {
	w, _ := newTestWorld()
	p := w.Add(playerSpec())
	stepN(w, 120)

	p.SetVelocityY(-500)
	w.Step(1.0 / 60)

	if p.OnGround() {
		t.Error("player should be airborne after a jump")
	}
	if p.Y+p.H >= 350 {
		t.Errorf("player should have moved up, bottom = %v", p.Y+p.H)
	}
}

func TestWorldGravityExemptBodyKeepsVelocity(t *testing.T) {
	w, _ := newTestWorld()
	o := w.Add(BodySpec{Tag: "obstacle", X: 800, Y: 330, W: 40, H: 40, VX: -300, Immovable: true})

	stepN(w, 60)

	if o.VY != 0 {
		t.Errorf("gravity-exempt body VY = %v, expected 0", o.VY)
	}
	if o.Y != 310 {
		t.Errorf("gravity-exempt body Y = %v, expected 310", o.Y)
	}
	// One second at -300 units/s.
	if o.X > 480.01 || o.X < 479.99 {
		t.Errorf("obstacle X = %v, expected ~480", o.X)
	}
}

func TestWorldColliderReportsAndSeparates(t *testing.T) {
	w, q := newTestWorld()
	w.AddCollider("player", "obstacle")
	p := w.Add(playerSpec())
	stepN(w, 120)
	q.Reset()

	o := w.Add(BodySpec{Tag: "obstacle", X: 110, Y: 330, W: 40, H: 40, Immovable: true})
	w.Step(1.0 / 60)

	events := q.Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(events), events)
	}
	if events[0].Kind != EventCollide || events[0].A != p.ID || events[0].B != o.ID {
		t.Errorf("unexpected event %+v", events[0])
	}
	if o.X != 90 {
		t.Errorf("immovable obstacle moved to X = %v", o.X)
	}
	if p.X+p.W > o.X {
		t.Errorf("player should be pushed out of the obstacle, right edge %v > %v", p.X+p.W, o.X)
	}
	if !p.Touching().Right {
		t.Error("player should touch the obstacle on its right side")
	}
}

func TestWorldLandingOnImmovableCountsAsGround(t *testing.T) {
	w, q := newTestWorld()
	w.AddCollider("player", "obstacle")
	w.Add(BodySpec{Tag: "obstacle", X: 100, Y: 330, W: 200, H: 40, Immovable: true})
	p := w.Add(BodySpec{Tag: "player", X: 100, Y: 279, W: 50, H: 60, VY: 100, AllowGravity: true, CollideWorldBounds: true})

	w.Step(1.0 / 60)

	if q.Len() == 0 {
		t.Fatal("expected a collide event")
	}
	if !p.OnGround() {
		t.Error("landing on an immovable body should count as ground contact")
	}
	if bottom := p.Y + p.H; bottom < 309.999 || bottom > 310.001 {
		t.Errorf("player bottom = %v, expected obstacle top 310", bottom)
	}
}

func TestWorldOverlapHasNoResponse(t *testing.T) {
	w, q := newTestWorld()
	w.AddOverlap("player", "coin")
	p := w.Add(playerSpec())
	stepN(w, 120)
	q.Reset()
	x, y := p.X, p.Y

	c := w.Add(BodySpec{Tag: "coin", X: 100, Y: 310, W: 30, H: 30})
	w.Step(1.0 / 60)

	events := q.Drain()
	if len(events) != 1 || events[0].Kind != EventOverlap || events[0].B != c.ID {
		t.Fatalf("expected one overlap event with the coin, got %+v", events)
	}
	if p.X != x || p.Y != y {
		t.Errorf("overlap should not move the player: (%v,%v) -> (%v,%v)", x, y, p.X, p.Y)
	}
}

func TestWorldReportsEveryPairInAStep(t *testing.T) {
	w, q := newTestWorld()
	w.AddOverlap("player", "coin")
	w.Add(playerSpec())
	stepN(w, 120)
	q.Reset()

	a := w.Add(BodySpec{Tag: "coin", X: 90, Y: 320, W: 20, H: 20})
	b := w.Add(BodySpec{Tag: "coin", X: 110, Y: 320, W: 20, H: 20})
	w.Step(1.0 / 60)

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].B != a.ID || events[1].B != b.ID {
		t.Errorf("events should be ordered by body id, got %+v", events)
	}
}

func TestWorldPause(t *testing.T) {
	w, _ := newTestWorld()
	o := w.Add(BodySpec{Tag: "obstacle", X: 800, Y: 330, W: 40, H: 40, VX: -300})

	w.Pause()
	stepN(w, 30)
	if o.X != 780 {
		t.Errorf("paused world moved body to X = %v", o.X)
	}
	if !w.Paused() {
		t.Error("Paused() should be true")
	}

	w.Resume()
	w.Step(1.0 / 60)
	if o.X >= 780 {
		t.Error("resumed world should move bodies again")
	}
}

func TestWorldDestroy(t *testing.T) {
	w, q := newTestWorld()
	w.AddOverlap("player", "coin")
	w.Add(playerSpec())
	c := w.Add(BodySpec{Tag: "coin", X: 100, Y: 300, W: 30, H: 30})

	if !w.Destroy(c.ID) {
		t.Fatal("Destroy() of live body should return true")
	}
	if w.Destroy(c.ID) {
		t.Error("second Destroy() should return false")
	}
	if c.Alive() {
		t.Error("destroyed body should not be alive")
	}
	if w.Count("coin") != 0 {
		t.Errorf("Count(coin) = %d, expected 0", w.Count("coin"))
	}

	w.Step(1.0 / 60)
	if q.Len() != 0 {
		t.Error("destroyed body should not produce contacts")
	}
}

func TestWorldLeftOf(t *testing.T) {
	w, _ := newTestWorld()
	gone := w.Add(BodySpec{Tag: "coin", X: -20, Y: 100, W: 30, H: 30})
	w.Add(BodySpec{Tag: "coin", X: 10, Y: 100, W: 30, H: 30})

	out := w.LeftOf(0)
	if len(out) != 1 || out[0] != gone {
		t.Errorf("LeftOf(0) = %v, expected only the off-screen coin", out)
	}
}
