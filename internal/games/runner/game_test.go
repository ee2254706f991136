package runner

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/atbot/runner/internal/assets"
	"github.com/atbot/runner/internal/core"
)

func newTestGame(t *testing.T, obs Observer) *Game {
	t.Helper()
	g := New(Options{Observer: obs})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 20, TickRate: 60, Seed: 42})
	return g
}

func bootToMenu(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < len(assets.Manifest); i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhaseMenu {
		t.Fatalf("phase after loading = %v, expected menu", g.Phase())
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Press(a)
	return in
}

func clickOn(r core.Rect) core.InputFrame {
	in := core.NewInputFrame()
	in.PointerDown(r.X+r.W/2, r.Y+r.H/2)
	return in
}

func TestBootLoadsEveryAsset(t *testing.T) {
	g := newTestGame(t, nil)
	if g.Phase() != PhaseBoot {
		t.Fatalf("initial phase = %v, expected boot", g.Phase())
	}

	for i := 0; i < len(assets.Manifest)-1; i++ {
		g.Step(core.NewInputFrame())
		if g.Phase() != PhaseBoot {
			t.Fatalf("left boot after %d of %d assets", i+1, len(assets.Manifest))
		}
	}
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseMenu {
		t.Fatalf("phase = %v, expected menu", g.Phase())
	}

	for _, e := range assets.Manifest {
		if g.Loader().Get(e.Key).Key != e.Key {
			t.Errorf("asset %q was not loaded", e.Key)
		}
	}
}

func TestBootSurvivesMissingAssets(t *testing.T) {
	g := New(Options{Assets: fstest.MapFS{}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 20, TickRate: 60, Seed: 1})
	bootToMenu(t, g)
}

func TestMenuStartsOnEnterEdge(t *testing.T) {
	g := newTestGame(t, nil)
	bootToMenu(t, g)

	held := core.NewInputFrame()
	held.Hold(core.ActionConfirm)
	g.Step(held)
	if g.Phase() != PhaseMenu {
		t.Fatal("holding Enter without a press should not start the game")
	}

	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhaseGameplay {
		t.Fatalf("phase = %v, expected game", g.Phase())
	}
	if g.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", g.Runs())
	}
}

func TestMenuStartsOnClick(t *testing.T) {
	g := newTestGame(t, nil)
	bootToMenu(t, g)

	g.Step(clickOn(core.NewRect(0, 0, 1, 1)))
	if g.Phase() != PhaseMenu {
		t.Fatal("click outside the start button should be ignored")
	}

	g.Step(clickOn(g.buttonRect(assets.StartButton)))
	if g.Phase() != PhaseGameplay {
		t.Fatalf("phase = %v, expected game", g.Phase())
	}
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	bootToMenu(t, g)
	g.Step(press(core.ActionConfirm))
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	obs := &recordingObserver{}
	g := newTestGame(t, obs)
	startGame(t, g)
	first := g.Run()

	g.Step(press(core.ActionRestart))
	if g.Run() != first {
		t.Fatal("restart should be ignored while playing")
	}

	collect(first)
	for i := 0; i < 3; i++ {
		hit(first)
	}
	first.Spawner().SpawnObstacle()
	first.Spawner().SpawnCoin()

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver || st.Lives != 0 || st.Score != 10 {
		t.Fatalf("state = %+v, expected game over with score 10", st)
	}

	g.Step(press(core.ActionRestart))
	run := g.Run()
	if run == first {
		t.Fatal("restart should start a fresh run")
	}

	st = g.State()
	if st.Score != 0 || st.Lives != 3 || st.GameOver {
		t.Errorf("after restart: %+v, expected score 0, 3 lives, playing", st)
	}
	if n := run.World().Count(TagObstacle) + run.World().Count(TagCoin); n != 0 {
		t.Errorf("%d entities survived the restart", n)
	}
	if p, _ := run.Clock().Period(TimerObstacle); p != 2*time.Second {
		t.Errorf("obstacle timer period = %v after restart", p)
	}
	if p, _ := run.Clock().Period(TimerCoin); p != 3*time.Second {
		t.Errorf("coin timer period = %v after restart", p)
	}
	if run.World().Paused() || run.Clock().Paused() {
		t.Error("restarted run should not be paused")
	}
	if obs.starts != 2 {
		t.Errorf("RunStarted called %d times, expected 2", obs.starts)
	}
}

func TestRestartOnClick(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)
	first := g.Run()
	for i := 0; i < 3; i++ {
		hit(first)
	}

	g.Step(clickOn(g.buttonRect(assets.RestartButton)))
	if g.Run() == first {
		t.Error("clicking the restart button should restart")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)

	if st := g.Step(press(core.ActionPause)).State; !st.Paused {
		t.Error("P should pause")
	}
	if st := g.Step(press(core.ActionPause)).State; st.Paused {
		t.Error("second P should resume")
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 20)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Loading 0/8") {
		t.Error("boot should show loading progress")
	}

	bootToMenu(t, g)
	g.Render(screen)
	if !strings.Contains(screen.String(), Title) {
		t.Error("menu should show the title")
	}
	if !strings.Contains(screen.String(), "START") {
		t.Error("menu should show the start button")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "♥ x3") {
		t.Errorf("HUD missing from:\n%s", out)
	}

	for i := 0; i < 3; i++ {
		hit(g.Run())
	}
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "RESTART") {
		t.Errorf("game over screen missing from:\n%s", out)
	}
	if !strings.Contains(out, "♥ x0") {
		t.Error("lives should read zero at game over")
	}
}

func TestRenderAdaptsToScreenSize(t *testing.T) {
	g := newTestGame(t, nil)
	startGame(t, g)

	small := core.NewScreen(40, 10)
	g.Render(small)
	if g.view.Cols != 40 || g.view.Rows != 10 {
		t.Errorf("viewport = %dx%d, expected 40x10", g.view.Cols, g.view.Rows)
	}
	if g.Run() == nil || g.Phase() != PhaseGameplay {
		t.Error("resizing should not reset the run")
	}
}
