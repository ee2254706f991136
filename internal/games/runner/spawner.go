package runner

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/engine"
)

// Timer names the spawner registers on the clock.
const (
	TimerObstacle = "obstacle"
	TimerCoin     = "coin"
)

// Spawner creates obstacles and coins when its timers fire.
type Spawner struct {
	world  *engine.World
	clock  *engine.Clock
	cfg    config.RunnerConfig
	rng    *rand.Rand
	logger *log.Logger
}

// NewSpawner creates a spawner. Coin heights are drawn from a source
// seeded with seed.
func NewSpawner(world *engine.World, clock *engine.Clock, cfg config.RunnerConfig, seed int64, logger *log.Logger) *Spawner {
	return &Spawner{
		world:  world,
		clock:  clock,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Arm schedules both spawn timers at their configured periods.
func (s *Spawner) Arm() {
	s.clock.Every(TimerObstacle, s.cfg.ObstaclePeriod())
	s.clock.Every(TimerCoin, s.cfg.CoinPeriod())
}

// HandleTimer spawns the entity belonging to the named timer.
// Unknown timers are ignored and return nil.
func (s *Spawner) HandleTimer(name string) *engine.Body {
	switch name {
	case TimerObstacle:
		return s.SpawnObstacle()
	case TimerCoin:
		return s.SpawnCoin()
	default:
		return nil
	}
}

// SpawnObstacle creates one obstacle at the spawn point.
func (s *Spawner) SpawnObstacle() *engine.Body {
	b := s.world.Add(ObstacleBody(s.cfg))
	s.logger.Debug("spawned obstacle", "id", b.ID)
	return b
}

// SpawnCoin creates one coin at a random height inside the coin band.
func (s *Spawner) SpawnCoin() *engine.Body {
	y := s.cfg.Coins.MinY
	if band := s.cfg.Coins.MaxY - s.cfg.Coins.MinY; band > 0 {
		y += s.rng.Float64() * band
	}
	b := s.world.Add(CoinBody(s.cfg, y))
	s.logger.Debug("spawned coin", "id", b.ID, "y", y)
	return b
}
