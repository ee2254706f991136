package runner

import (
	"fmt"

	"github.com/atbot/runner/internal/core"
)

// State is the session's run state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session is the score and lives bookkeeping of one run.
// Lives may drop below zero when several hits land in one tick, but the
// game-over transition happens only once.
type Session struct {
	score     int
	lives     int
	coinValue int
	state     State
}

// NewSession starts a run with the given lives.
func NewSession(lives, coinValue int) *Session {
	return &Session{lives: lives, coinValue: coinValue, state: StatePlaying}
}

// Hit costs one life. It returns true if this hit ended the run.
func (s *Session) Hit() bool {
	s.lives--
	if s.lives <= 0 && s.state == StatePlaying {
		s.state = StateGameOver
		return true
	}
	return false
}

// Collect adds one coin's worth of score and returns the new score.
func (s *Session) Collect() int {
	s.score += s.coinValue
	return s.score
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives. The value may be negative.
func (s *Session) Lives() int { return s.lives }

// State returns the run state.
func (s *Session) State() State { return s.state }

// IsOver reports whether the run has ended.
func (s *Session) IsOver() bool { return s.state == StateGameOver }

// ScoreText is the score label shown on the HUD.
func (s *Session) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.score)
}

// LivesText is the lives label shown on the HUD. It never shows a
// negative count.
func (s *Session) LivesText() string {
	return fmt.Sprintf("♥ x%d", core.Max(s.lives, 0))
}

// Observer is notified of session milestones.
type Observer interface {
	RunStarted()
	CoinCollected(score int)
	ObstacleHit(lives int)
	GameOver(score int)
}
