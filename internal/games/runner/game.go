// Package runner implements the ATBOT side-scrolling runner: the player
// double-jumps over obstacles and collects coins while the ground scrolls
// by, until the last life is lost.
package runner

import (
	"io"
	"io/fs"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/atbot/runner/internal/assets"
	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/core"
	"github.com/atbot/runner/internal/engine"
)

// Phase is the part of the program currently running.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseMenu
	PhaseGameplay
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBoot:
		return "boot"
	case PhaseMenu:
		return "menu"
	case PhaseGameplay:
		return "game"
	default:
		return "unknown"
	}
}

// Title is the name shown on the menu.
const Title = "ATBOT RUNNER"

// Options configures a Game.
type Options struct {
	Config   config.RunnerConfig
	Logger   *log.Logger
	Observer Observer
	Assets   fs.FS          // defaults to the embedded art
	Manifest []assets.Entry // defaults to assets.Manifest
}

// Game sequences boot, menu and gameplay.
type Game struct {
	opts    Options
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	view    engine.Viewport
	rng     *rand.Rand
	logger  *log.Logger

	phase  Phase
	loader *engine.Loader
	run    *Run
	runs   int
}

// New creates a runner game.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.World.Width <= 0 {
		cfg = config.DefaultRunnerConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Assets == nil {
		opts.Assets = assets.FS()
	}
	if opts.Manifest == nil {
		opts.Manifest = assets.Manifest
	}
	return &Game{opts: opts, cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ATBOT Runner"
}

// Reset returns to the boot phase and queues every asset for loading.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = engine.NewViewport(g.cfg.World.Width, g.cfg.World.Height, runtime.ScreenW, runtime.ScreenH)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.run = nil
	g.runs = 0
	g.phase = PhaseBoot

	g.loader = engine.NewLoader(g.opts.Assets)
	for _, e := range g.opts.Manifest {
		g.loader.Image(e.Key, e.Path)
	}
	g.loader.OnComplete(func() {
		g.enter(PhaseMenu)
	})
}

// Resize adapts the viewport to a new screen size without touching the run.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.view = engine.NewViewport(g.cfg.World.Width, g.cfg.World.Height, cols, rows)
}

// Step advances the current phase by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseBoot:
		g.stepBoot()
	case PhaseMenu:
		g.stepMenu(in)
	case PhaseGameplay:
		g.stepGameplay(in)
	}
	return core.StepResult{State: g.State()}
}

// stepBoot loads one asset per tick. The loader's completion moves on to
// the menu.
func (g *Game) stepBoot() {
	if err := g.loader.LoadNext(); err != nil {
		g.logger.Warn("asset load failed, using placeholder", "err", err)
	}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.JustPressed(core.ActionConfirm) || g.clicked(in, assets.StartButton) {
		g.startRun()
	}
}

func (g *Game) stepGameplay(in core.InputFrame) {
	if g.run.Session().IsOver() {
		if in.JustPressed(core.ActionRestart) || g.clicked(in, assets.RestartButton) {
			g.logger.Info("restarting run")
			g.startRun()
			return
		}
	} else if in.JustPressed(core.ActionPause) {
		g.run.TogglePause()
	}
	g.run.Step(in, g.runtime.TickDuration())
}

func (g *Game) startRun() {
	g.runs++
	g.run = NewRun(g.cfg, g.rng.Int63(), g.logger, g.opts.Observer)
	g.enter(PhaseGameplay)
}

func (g *Game) enter(p Phase) {
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}

// clicked reports whether this frame's pointer press landed on the button.
func (g *Game) clicked(in core.InputFrame, button string) bool {
	if in.Pointer == nil {
		return false
	}
	return g.buttonRect(button).Contains(in.Pointer.X, in.Pointer.Y)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Run returns the current run, or nil before the first one starts.
func (g *Game) Run() *Run {
	return g.run
}

// Runs returns how many runs were started since the last reset.
func (g *Game) Runs() int {
	return g.runs
}

// Loader returns the asset loader.
func (g *Game) Loader() *engine.Loader {
	return g.loader
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Phase: g.phase.String()}
	if g.phase == PhaseGameplay && g.run != nil {
		s := g.run.Session()
		st.Score = s.Score()
		st.Lives = core.Max(s.Lives(), 0)
		st.GameOver = s.IsOver()
		st.Paused = g.run.Paused()
	}
	return st
}
