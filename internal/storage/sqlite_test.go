package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ada", Difficulty: "normal", Score: 100, Duration: 12 * time.Second},
		{Player: "bob", Difficulty: "normal", Score: 50},
		{Player: "ada", Difficulty: "normal", Score: 200},
		{Player: "ada", Difficulty: "hard", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %v", top)
	}
	if top[1].Duration != 12*time.Second {
		t.Errorf("Duration = %v, expected 12s", top[1].Duration)
	}
	if top[2].Player != "bob" {
		t.Errorf("Player = %q, expected bob", top[2].Player)
	}

	hard, err := store.TopRuns("hard", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard run, got %d", len(hard))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Difficulty: "normal", Score: (i + 1) * 10})
	}

	top, err := store.TopRuns("normal", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 50 || top[1].Score != 40 || top[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreTiesFavourEarlierRun(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Player: "first", Difficulty: "normal", Score: 30})
	store.SaveRun(Run{Player: "second", Difficulty: "normal", Score: 30})

	top, err := store.TopRuns("normal", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Player != "first" {
		t.Errorf("tie went to %q, expected first", top[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Difficulty: "normal", Score: 300})
	store.SaveRun(Run{Difficulty: "normal", Score: 200})

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Difficulty: "normal", Score: 200})
	store.SaveRun(Run{Difficulty: "hard", Score: 300})

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.TopRuns("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}

	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard runs should not be affected by clearing normal")
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Player: "ada", Difficulty: "normal", Score: i * 10})
	}
	store.SaveRun(Run{Player: "bob", Difficulty: "easy", Score: 70})

	runs, err := store.PlayerRuns("ada", 3)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 40 {
		t.Errorf("most recent run score = %d, expected 40", runs[0].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "normal", Score: 10})
	store.SaveRun(Run{Difficulty: "normal", Score: 30})
	store.SaveRun(Run{Difficulty: "easy", Score: 80})

	st, err := store.DifficultyStats("normal")
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 30 || st.AvgScore != 20 || st.TotalScore != 40 {
		t.Errorf("unexpected stats %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.DifficultyStats("hard")
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed difficulty %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["easy"].HighScore != 80 {
		t.Errorf("unexpected AllStats() %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
