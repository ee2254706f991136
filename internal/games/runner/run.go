package runner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/atbot/runner/internal/assets"
	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/core"
	"github.com/atbot/runner/internal/engine"
)

// Run is one gameplay phase from start to game over. Restarting builds a
// fresh Run, so nothing carries over between runs.
type Run struct {
	cfg      config.RunnerConfig
	queue    *engine.Queue
	world    *engine.World
	clock    *engine.Clock
	player   *Player
	spawner  *Spawner
	session  *Session
	bg       *engine.TileSprite
	ground   *engine.TileSprite
	paused   bool
	logger   *log.Logger
	observer Observer
}

// NewRun sets up the world, the player, the contact rules and the spawn
// timers.
func NewRun(cfg config.RunnerConfig, seed int64, logger *log.Logger, observer Observer) *Run {
	q := engine.NewQueue()
	world := engine.NewWorld(engine.WorldConfig{
		Width:   cfg.World.Width,
		Height:  cfg.World.Height,
		FloorY:  cfg.World.FloorY,
		Gravity: cfg.World.Gravity,
	}, q)
	clock := engine.NewClock(q)

	r := &Run{
		cfg:      cfg,
		queue:    q,
		world:    world,
		clock:    clock,
		player:   NewPlayer(world, cfg),
		spawner:  NewSpawner(world, clock, cfg, seed, logger),
		session:  NewSession(cfg.Session.Lives, cfg.Session.CoinValue),
		bg:       engine.NewTileSprite(assets.Background),
		ground:   engine.NewTileSprite(assets.Ground),
		logger:   logger,
		observer: observer,
	}

	world.AddCollider(TagPlayer, TagObstacle)
	world.AddOverlap(TagPlayer, TagCoin)
	r.spawner.Arm()

	if observer != nil {
		observer.RunStarted()
	}
	return r
}

// Step advances the run by one tick of length dt.
func (r *Run) Step(in core.InputFrame, dt time.Duration) {
	if r.paused {
		return
	}

	bgSpeed, groundSpeed := ScrollSpeeds(r.cfg, in.IsHeld(core.ActionBoost))
	r.bg.Scroll(bgSpeed)
	r.ground.Scroll(groundSpeed)

	if r.session.IsOver() {
		return
	}

	if in.JustPressed(core.ActionJump) && r.player.CanJump() {
		r.player.Jump()
	}

	r.clock.Advance(dt)
	r.world.Step(dt.Seconds())
	r.Dispatch(r.queue.Drain())

	if r.cfg.World.Cull {
		r.cull()
	}
	r.player.update(dt)
}

// Dispatch handles timer and contact events in order.
func (r *Run) Dispatch(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventTimer:
			r.spawner.HandleTimer(e.Timer)
		case engine.EventCollide:
			r.HandleObstacleHit(e.B)
		case engine.EventOverlap:
			r.HandleCoinCollected(e.B)
		}
	}
}

// HandleObstacleHit destroys the obstacle and costs a life. The hit that
// takes lives to zero ends the run.
func (r *Run) HandleObstacleHit(obstacle engine.BodyID) {
	if !r.world.Destroy(obstacle) {
		return
	}
	ended := r.session.Hit()
	r.logger.Info("obstacle hit", "lives", r.session.Lives())
	if r.observer != nil {
		r.observer.ObstacleHit(r.session.Lives())
	}
	if ended {
		r.gameOver()
	}
}

// HandleCoinCollected destroys the coin and adds its value to the score.
func (r *Run) HandleCoinCollected(coin engine.BodyID) {
	if !r.world.Destroy(coin) {
		return
	}
	score := r.session.Collect()
	r.logger.Debug("coin collected", "score", score)
	if r.observer != nil {
		r.observer.CoinCollected(score)
	}
}

func (r *Run) gameOver() {
	r.world.Pause()
	r.clock.Pause()
	r.player.StopAnimation()
	r.logger.Info("game over", "score", r.session.Score())
	if r.observer != nil {
		r.observer.GameOver(r.session.Score())
	}
}

// cull destroys entities that scrolled past the left edge.
func (r *Run) cull() {
	for _, b := range r.world.LeftOf(0) {
		if b.Tag == TagPlayer {
			continue
		}
		r.world.Destroy(b.ID)
	}
}

// TogglePause freezes or unfreezes the run. Finished runs cannot be paused.
func (r *Run) TogglePause() {
	if r.session.IsOver() {
		return
	}
	r.paused = !r.paused
	if r.paused {
		r.world.Pause()
		r.clock.Pause()
	} else {
		r.world.Resume()
		r.clock.Resume()
	}
}

// Paused reports whether the run is paused.
func (r *Run) Paused() bool { return r.paused }

// Session returns the run's score and lives.
func (r *Run) Session() *Session { return r.session }

// Player returns the player controller.
func (r *Run) Player() *Player { return r.player }

// World returns the physics world.
func (r *Run) World() *engine.World { return r.world }

// Clock returns the spawn clock.
func (r *Run) Clock() *engine.Clock { return r.clock }

// Queue returns the event queue shared by the world and the clock.
func (r *Run) Queue() *engine.Queue { return r.queue }

// Spawner returns the entity spawner.
func (r *Run) Spawner() *Spawner { return r.spawner }
