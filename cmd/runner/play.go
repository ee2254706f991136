package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atbot/runner/internal/core"
	"github.com/atbot/runner/internal/games/runner"
	"github.com/atbot/runner/internal/platform/tui"
	"github.com/atbot/runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start the runner: assets load, the menu appears, and Enter (or a
click on START) begins a run.

Controls:
  Space/Up/W - Jump (press again in the air to double-jump)
  Right/D    - Run faster while held
  Enter      - Start
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, slower and sparser obstacles
  normal - 3 lives
  hard   - 2 lives, faster and denser obstacles

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closer, err := newLogger(io.Discard, "runner")
	if err != nil {
		return err
	}
	defer closer.Close()

	runnerCfg, preset, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := runner.New(runner.Options{
		Config: runnerCfg,
		Logger: logger,
	})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Player:     playerName(),
		Difficulty: string(preset),
		Logger:     logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playerName names local runs after the OS user.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
