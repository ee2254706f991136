// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Session   SessionConfig   `yaml:"session"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Coins     CoinConfig      `yaml:"coins"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Animation AnimationConfig `yaml:"animation"`
}

// WorldConfig defines the logical display and physics world.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // units/s², positive is down
	FloorY  float64 `yaml:"floor_y"` // y where bodies come to rest
	Cull    bool    `yaml:"cull"`    // destroy entities that leave the left edge
}

// PlayerConfig defines the player body and jump rules.
type PlayerConfig struct {
	X            float64 `yaml:"x"` // spawn centre
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // upward speed magnitude
	MaxJumps     int     `yaml:"max_jumps"`
}

// SessionConfig defines score and lives bookkeeping.
type SessionConfig struct {
	Lives     int `yaml:"lives"`
	CoinValue int `yaml:"coin_value"`
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	PeriodMS  int     `yaml:"period_ms"`
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
}

// CoinConfig defines coin spawning. Y is drawn uniformly from [MinY, MaxY].
type CoinConfig struct {
	PeriodMS  int     `yaml:"period_ms"`
	SpawnX    float64 `yaml:"spawn_x"`
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	VelocityX float64 `yaml:"velocity_x"`
}

// ScrollConfig defines the per-tick texture advance of the tiled layers.
type ScrollConfig struct {
	Background      float64 `yaml:"background"`
	BackgroundBoost float64 `yaml:"background_boost"`
	Ground          float64 `yaml:"ground"`
	GroundBoost     float64 `yaml:"ground_boost"`
}

// AnimationConfig defines the player's run cycle.
type AnimationConfig struct {
	RunFrames []string `yaml:"run_frames"`
	FrameRate float64  `yaml:"frame_rate"`
}

// ObstaclePeriod returns the obstacle spawn period.
func (c RunnerConfig) ObstaclePeriod() time.Duration {
	return time.Duration(c.Obstacles.PeriodMS) * time.Millisecond
}

// CoinPeriod returns the coin spawn period.
func (c RunnerConfig) CoinPeriod() time.Duration {
	return time.Duration(c.Coins.PeriodMS) * time.Millisecond
}

// Validate reports settings that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.FloorY <= 0 || c.World.FloorY > c.World.Height {
		errs = append(errs, fmt.Errorf("floor_y %v outside world", c.World.FloorY))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("max_jumps must be at least 1, got %d", c.Player.MaxJumps))
	}
	if c.Session.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Session.Lives))
	}
	if c.Obstacles.PeriodMS <= 0 || c.Coins.PeriodMS <= 0 {
		errs = append(errs, errors.New("spawn periods must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 || c.Coins.Width <= 0 || c.Coins.Height <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.Coins.MinY > c.Coins.MaxY {
		errs = append(errs, fmt.Errorf("coin band inverted: min_y %v > max_y %v", c.Coins.MinY, c.Coins.MaxY))
	}
	if len(c.Animation.RunFrames) == 0 || c.Animation.FrameRate <= 0 {
		errs = append(errs, errors.New("animation needs frames and a positive frame_rate"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
