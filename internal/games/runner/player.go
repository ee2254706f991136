package runner

import (
	"time"

	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/engine"
)

const runAnimation = "run"

// Player owns the jump budget of the player body.
//
// The budget is only refilled when the body reports ground contact, which
// allows a double jump but never a third one mid-air.
type Player struct {
	body         *engine.Body
	anim         *engine.Animator
	jumpCount    int
	maxJumps     int
	jumpVelocity float64
}

// NewPlayer adds the player body to the world and starts its run cycle.
func NewPlayer(world *engine.World, cfg config.RunnerConfig) *Player {
	anim := engine.NewAnimator()
	anim.Create(engine.Animation{
		Key:       runAnimation,
		Frames:    cfg.Animation.RunFrames,
		FrameRate: cfg.Animation.FrameRate,
		Loop:      true,
	})
	anim.Play(runAnimation)

	return &Player{
		body:         world.Add(PlayerBody(cfg)),
		anim:         anim,
		maxJumps:     cfg.Player.MaxJumps,
		jumpVelocity: JumpVelocity(cfg),
	}
}

// CanJump refills the jump budget if the body is on the ground, then
// reports whether a jump is left.
func (p *Player) CanJump() bool {
	if p.body.OnGround() {
		p.jumpCount = 0
	}
	return p.jumpCount < p.maxJumps
}

// Jump launches the player if the budget allows it. Jumps past the budget
// are dropped silently.
func (p *Player) Jump() {
	if p.jumpCount >= p.maxJumps {
		return
	}
	p.body.SetVelocityY(p.jumpVelocity)
	p.jumpCount++
}

// JumpCount returns the number of jumps since the last ground contact.
func (p *Player) JumpCount() int {
	return p.jumpCount
}

// Body returns the player's physics body.
func (p *Player) Body() *engine.Body {
	return p.body
}

// StopAnimation freezes the run cycle on its current frame.
func (p *Player) StopAnimation() {
	p.anim.Stop()
}

// Animating reports whether the run cycle is playing.
func (p *Player) Animating() bool {
	return p.anim.Playing()
}

// Frame returns the asset key to draw the player with.
func (p *Player) Frame() string {
	return p.anim.Frame()
}

func (p *Player) update(dt time.Duration) {
	p.anim.Update(dt)
}
