package engine

import (
	"sort"

	"github.com/solarlune/resolv"

	"github.com/atbot/runner/internal/core"
)

// cellSize is the broadphase grid size in world units.
const cellSize = 20

// BodyID identifies a body for the lifetime of a world.
type BodyID uint64

// Touching records which sides of a body were in contact during the last step.
type Touching struct {
	Up, Down, Left, Right bool
}

// BodySpec describes a body to create. X and Y are the centre, as the
// spawn points in the game configuration are.
type BodySpec struct {
	Tag                string
	X, Y               float64
	W, H               float64
	VX, VY             float64
	Immovable          bool
	AllowGravity       bool
	CollideWorldBounds bool
}

// Body is an axis-aligned arcade body.
type Body struct {
	ID  BodyID
	Tag string

	X, Y   float64 // top-left
	W, H   float64
	VX, VY float64

	Immovable          bool
	AllowGravity       bool
	CollideWorldBounds bool

	touching Touching
	alive    bool
	obj      *resolv.Object
}

// Bounds returns the body's box.
func (b *Body) Bounds() core.FRect {
	return core.FRect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Touching returns the contact state from the last step.
func (b *Body) Touching() Touching {
	return b.touching
}

// OnGround reports whether the body rested on something during the last step.
func (b *Body) OnGround() bool {
	return b.touching.Down
}

// SetVelocity replaces both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX, b.VY = vx, vy
}

// SetVelocityY replaces the vertical velocity.
func (b *Body) SetVelocityY(vy float64) {
	b.VY = vy
}

// Alive reports whether the body is still part of its world.
func (b *Body) Alive() bool {
	return b.alive
}

func (b *Body) sync() {
	b.obj.X, b.obj.Y = b.X, b.Y
	b.obj.Update()
}

type contactRule struct {
	kind EventKind
	a, b string
}

// WorldConfig sizes the world and its gravity.
type WorldConfig struct {
	Width, Height float64
	FloorY        float64 // bodies that collide with world bounds rest here
	Gravity       float64 // units/s², positive is down
}

// World is a minimal arcade physics simulation: constant gravity, velocity
// integration, world bounds, and collider/overlap rules between tags.
// Contacts are reported to the queue once per pair per step.
type World struct {
	cfg    WorldConfig
	queue  *Queue
	space  *resolv.Space
	bodies []*Body
	byID   map[BodyID]*Body
	rules  []contactRule
	nextID BodyID
	paused bool
}

// NewWorld creates an empty world reporting contacts to q.
func NewWorld(cfg WorldConfig, q *Queue) *World {
	// The broadphase grid extends past the right edge where entities spawn.
	cols := int(cfg.Width)/cellSize + 8
	rows := int(cfg.Height)/cellSize + 2
	return &World{
		cfg:   cfg,
		queue: q,
		space: resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		byID:  make(map[BodyID]*Body),
	}
}

// Config returns the world configuration.
func (w *World) Config() WorldConfig {
	return w.cfg
}

// Add creates a body from spec.
func (w *World) Add(spec BodySpec) *Body {
	w.nextID++
	b := &Body{
		ID:                 w.nextID,
		Tag:                spec.Tag,
		X:                  spec.X - spec.W/2,
		Y:                  spec.Y - spec.H/2,
		W:                  spec.W,
		H:                  spec.H,
		VX:                 spec.VX,
		VY:                 spec.VY,
		Immovable:          spec.Immovable,
		AllowGravity:       spec.AllowGravity,
		CollideWorldBounds: spec.CollideWorldBounds,
		alive:              true,
	}
	b.obj = resolv.NewObject(b.X, b.Y, b.W, b.H, spec.Tag)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	w.byID[b.ID] = b
	return b
}

// Body looks up a live body.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Destroy removes a body. Destroying an unknown or dead body is a no-op.
func (w *World) Destroy(id BodyID) bool {
	b, ok := w.byID[id]
	if !ok {
		return false
	}
	b.alive = false
	w.space.Remove(b.obj)
	delete(w.byID, id)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	return true
}

// Bodies returns the live bodies with the given tag in creation order.
func (w *World) Bodies(tag string) []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.Tag == tag {
			out = append(out, b)
		}
	}
	return out
}

// Count returns the number of live bodies with the given tag.
func (w *World) Count(tag string) int {
	n := 0
	for _, b := range w.bodies {
		if b.Tag == tag {
			n++
		}
	}
	return n
}

// LeftOf returns live bodies whose right edge is left of x.
func (w *World) LeftOf(x float64) []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.X+b.W < x {
			out = append(out, b)
		}
	}
	return out
}

// AddCollider registers a collider rule: overlapping bodies are separated
// (immovable bodies are never displaced) and an EventCollide is reported.
func (w *World) AddCollider(tagA, tagB string) {
	w.rules = append(w.rules, contactRule{kind: EventCollide, a: tagA, b: tagB})
}

// AddOverlap registers an overlap rule: an EventOverlap is reported with no
// collision response.
func (w *World) AddOverlap(tagA, tagB string) {
	w.rules = append(w.rules, contactRule{kind: EventOverlap, a: tagA, b: tagB})
}

// Pause freezes the simulation. Bodies keep their velocities.
func (w *World) Pause() { w.paused = true }

// Resume unfreezes the simulation.
func (w *World) Resume() { w.paused = false }

// Paused reports whether the simulation is frozen.
func (w *World) Paused() bool { return w.paused }

// Step integrates all bodies by dt seconds and reports contacts.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		b.touching = Touching{}
		if b.AllowGravity && !b.Immovable {
			b.VY += w.cfg.Gravity * dt
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
		if b.CollideWorldBounds {
			w.clampToBounds(b)
		}
		b.sync()
	}

	for _, rule := range w.rules {
		w.detect(rule)
	}
}

func (w *World) clampToBounds(b *Body) {
	if b.Y+b.H >= w.cfg.FloorY {
		b.Y = w.cfg.FloorY - b.H
		if b.VY > 0 {
			b.VY = 0
		}
		b.touching.Down = true
	}
	if b.Y < 0 {
		b.Y = 0
		if b.VY < 0 {
			b.VY = 0
		}
		b.touching.Up = true
	}
	if b.X < 0 {
		b.X = 0
		b.touching.Left = true
	}
	if b.X+b.W > w.cfg.Width {
		b.X = w.cfg.Width - b.W
		b.touching.Right = true
	}
}

// detect runs the resolv broadphase for every body carrying the rule's first
// tag, confirms each candidate with an exact box test, and reports the pair.
func (w *World) detect(rule contactRule) {
	for _, a := range w.Bodies(rule.a) {
		collision := a.obj.Check(0, 0, rule.b)
		if collision == nil {
			continue
		}

		seen := make(map[BodyID]bool, len(collision.Objects))
		candidates := make([]*Body, 0, len(collision.Objects))
		for _, o := range collision.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == a || !other.alive || seen[other.ID] {
				continue
			}
			seen[other.ID] = true
			candidates = append(candidates, other)
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

		for _, other := range candidates {
			if !a.Bounds().Intersects(other.Bounds()) {
				continue
			}
			if rule.kind == EventCollide {
				separate(a, other)
			}
			w.queue.Push(Event{Kind: rule.kind, A: a.ID, B: other.ID})
		}
	}
}

// separate pushes the movable body out of the other along the axis of least
// penetration and records the touching sides.
func separate(a, b *Body) {
	if a.Immovable && b.Immovable {
		return
	}
	m, s := a, b
	if a.Immovable {
		m, s = b, a
	}

	dx, dy := m.Bounds().Overlap(s.Bounds())
	mcx, mcy := m.Bounds().Center()
	scx, scy := s.Bounds().Center()

	if dy <= dx {
		if mcy < scy {
			m.Y -= dy
			if m.VY > 0 {
				m.VY = 0
			}
			m.touching.Down = true
			s.touching.Up = true
		} else {
			m.Y += dy
			if m.VY < 0 {
				m.VY = 0
			}
			m.touching.Up = true
			s.touching.Down = true
		}
	} else {
		if mcx < scx {
			m.X -= dx
			m.touching.Right = true
			s.touching.Left = true
		} else {
			m.X += dx
			m.touching.Left = true
			s.touching.Right = true
		}
	}
	m.sync()
}
