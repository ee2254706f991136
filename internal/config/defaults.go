package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It matches defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  400,
			Gravity: 1000,
			FloorY:  350,
			Cull:    true,
		},
		Player: PlayerConfig{
			X:            100,
			Y:            300,
			Width:        50,
			Height:       60,
			JumpVelocity: 500,
			MaxJumps:     2,
		},
		Session: SessionConfig{
			Lives:     3,
			CoinValue: 10,
		},
		Obstacles: ObstacleConfig{
			PeriodMS:  2000,
			SpawnX:    800,
			SpawnY:    330,
			Width:     40,
			Height:    40,
			VelocityX: -300,
		},
		Coins: CoinConfig{
			PeriodMS:  3000,
			SpawnX:    800,
			MinY:      200,
			MaxY:      280,
			Width:     30,
			Height:    30,
			VelocityX: -200,
		},
		Scroll: ScrollConfig{
			Background:      2,
			BackgroundBoost: 5,
			Ground:          6,
			GroundBoost:     10,
		},
		Animation: AnimationConfig{
			RunFrames: []string{"horse1", "horse2"},
			FrameRate: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
