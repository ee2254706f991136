package runner

import (
	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/engine"
)

// Body tags used for contact rules.
const (
	TagPlayer   = "player"
	TagObstacle = "obstacle"
	TagCoin     = "coin"
)

// PlayerBody returns the player's body: affected by gravity and kept inside
// the world, with no horizontal motion of its own.
func PlayerBody(cfg config.RunnerConfig) engine.BodySpec {
	return engine.BodySpec{
		Tag:                TagPlayer,
		X:                  cfg.Player.X,
		Y:                  cfg.Player.Y,
		W:                  cfg.Player.Width,
		H:                  cfg.Player.Height,
		AllowGravity:       true,
		CollideWorldBounds: true,
	}
}

// ObstacleBody returns an obstacle body at the fixed spawn point. Obstacles
// ignore gravity and are never displaced by collisions.
func ObstacleBody(cfg config.RunnerConfig) engine.BodySpec {
	return engine.BodySpec{
		Tag:       TagObstacle,
		X:         cfg.Obstacles.SpawnX,
		Y:         cfg.Obstacles.SpawnY,
		W:         cfg.Obstacles.Width,
		H:         cfg.Obstacles.Height,
		VX:        cfg.Obstacles.VelocityX,
		Immovable: true,
	}
}

// CoinBody returns a coin body spawned at height y. Coins ignore gravity.
func CoinBody(cfg config.RunnerConfig, y float64) engine.BodySpec {
	return engine.BodySpec{
		Tag: TagCoin,
		X:   cfg.Coins.SpawnX,
		Y:   y,
		W:   cfg.Coins.Width,
		H:   cfg.Coins.Height,
		VX:  cfg.Coins.VelocityX,
	}
}

// JumpVelocity returns the vertical velocity a jump sets. Up is negative.
func JumpVelocity(cfg config.RunnerConfig) float64 {
	return -cfg.Player.JumpVelocity
}

// ScrollSpeeds returns the per-tick texture advance of the background and
// ground layers.
func ScrollSpeeds(cfg config.RunnerConfig, boosting bool) (bg, ground float64) {
	if boosting {
		return cfg.Scroll.BackgroundBoost, cfg.Scroll.GroundBoost
	}
	return cfg.Scroll.Background, cfg.Scroll.Ground
}
