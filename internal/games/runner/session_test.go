package runner

import "testing"

func TestSessionScenario(t *testing.T) {
	s := NewSession(3, 10)

	steps := []struct {
		name     string
		do       func()
		score    int
		lives    int
		gameOver bool
	}{
		{"coin", func() { s.Collect() }, 10, 3, false},
		{"first hit", func() { s.Hit() }, 10, 2, false},
		{"second hit", func() { s.Hit() }, 10, 1, false},
		{"third hit", func() { s.Hit() }, 10, 0, true},
	}

	for _, step := range steps {
		step.do()
		if s.Score() != step.score || s.Lives() != step.lives || s.IsOver() != step.gameOver {
			t.Errorf("after %s: score=%d lives=%d over=%v, expected %d/%d/%v",
				step.name, s.Score(), s.Lives(), s.IsOver(), step.score, step.lives, step.gameOver)
		}
	}
}

func TestSessionGameOverOnce(t *testing.T) {
	s := NewSession(1, 10)

	if !s.Hit() {
		t.Error("hit taking lives to zero should end the run")
	}
	if s.Hit() {
		t.Error("game over should only be entered once")
	}
	if s.Lives() != -1 {
		t.Errorf("Lives() = %d, expected -1", s.Lives())
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, expected game over", s.State())
	}
	if s.LivesText() != "♥ x0" {
		t.Errorf("LivesText() = %q, expected no negative count", s.LivesText())
	}
}

func TestSessionScoreOnlyFromCoins(t *testing.T) {
	s := NewSession(3, 10)
	for i := 1; i <= 5; i++ {
		if got := s.Collect(); got != 10*i {
			t.Errorf("Collect() #%d = %d, expected %d", i, got, 10*i)
		}
	}
	s.Hit()
	if s.Score() != 50 {
		t.Errorf("hit changed score to %d", s.Score())
	}
	if s.ScoreText() != "Score: 50" {
		t.Errorf("ScoreText() = %q", s.ScoreText())
	}
}
