package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atbot/runner/internal/config"
	"github.com/atbot/runner/internal/platform/tui"
	"github.com/atbot/runner/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresStats bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs for a difficulty.

In a terminal this opens the interactive scoreboard; use tab or the arrow
keys to switch difficulty. --plain prints a table instead.

Examples:
  runner scores
  runner scores --difficulty hard --plain
  runner scores --stats`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Print per-difficulty statistics")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty := string(preset)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresStats {
		return printStats(store)
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height, termErr := term.GetSize(fd)
		if termErr != nil {
			width, height = 80, 24
		}
		_, err := tui.RunScoreboard(store, width, height, difficulty)
		return err
	}

	return printScores(store, difficulty, flagScoresLimit)
}

func printScores(store *storage.Store, difficulty string, limit int) error {
	runs, err := store.TopRuns(difficulty, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play --difficulty %s' to set the first high score!\n", difficulty)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "----", "----")

	for i, r := range runs {
		secs := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-16s  %-8d  %d:%02d    %s\n",
			i+1, r.Player, r.Score, secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Difficulty", "Runs", "Best", "Average", "Last played")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.1f  %s\n",
			s.Difficulty, s.Runs, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
