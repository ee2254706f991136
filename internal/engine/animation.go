package engine

import "time"

// Animation is a named sequence of asset keys played at a fixed rate.
type Animation struct {
	Key       string
	Frames    []string
	FrameRate float64 // frames per second
	Loop      bool
}

// Animator plays one animation at a time for a single entity.
type Animator struct {
	anims   map[string]Animation
	current string
	frame   int
	elapsed time.Duration
	playing bool
}

// NewAnimator creates an animator with no animations.
func NewAnimator() *Animator {
	return &Animator{anims: make(map[string]Animation)}
}

// Create registers an animation under its key, replacing any previous one.
func (a *Animator) Create(anim Animation) {
	a.anims[anim.Key] = anim
}

// Play starts the named animation from its first frame.
// Playing the animation that is already running leaves it untouched.
func (a *Animator) Play(key string) bool {
	if _, ok := a.anims[key]; !ok {
		return false
	}
	if a.playing && a.current == key {
		return true
	}
	a.current = key
	a.frame = 0
	a.elapsed = 0
	a.playing = true
	return true
}

// Stop halts playback on the current frame.
func (a *Animator) Stop() {
	a.playing = false
}

// Playing reports whether an animation is running.
func (a *Animator) Playing() bool {
	return a.playing
}

// Update advances playback by dt.
func (a *Animator) Update(dt time.Duration) {
	if !a.playing {
		return
	}
	anim := a.anims[a.current]
	if len(anim.Frames) == 0 || anim.FrameRate <= 0 {
		return
	}
	step := time.Duration(float64(time.Second) / anim.FrameRate)
	a.elapsed += dt
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame >= len(anim.Frames) {
			if !anim.Loop {
				a.frame = len(anim.Frames) - 1
				a.playing = false
				return
			}
			a.frame = 0
		}
	}
}

// Frame returns the asset key of the frame on display, or "" if nothing
// has been played.
func (a *Animator) Frame() string {
	anim, ok := a.anims[a.current]
	if !ok || len(anim.Frames) == 0 {
		return ""
	}
	return anim.Frames[a.frame]
}
