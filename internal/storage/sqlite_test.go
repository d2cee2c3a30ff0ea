package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, s := range []int{1500, 700, 6400} {
		if _, err := store.SaveScore("paddlerush", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("paddlerush_boss", 4200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("paddlerush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 6400 || scores[1].Score != 1500 || scores[2].Score != 700 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	practice, err := store.TopScores("paddlerush_boss", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(practice) != 1 {
		t.Errorf("Expected 1 practice score, got %d", len(practice))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)
	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("paddlerush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("paddlerush", 100)
	store.SaveScore("paddlerush", 300)
	store.SaveScore("paddlerush", 200)

	high, err = store.HighScore("paddlerush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreAttempts(t *testing.T) {
	store := openStore(t)

	attempts := []struct {
		a     core.Attempt
		score int
	}{
		{core.Attempt{Phase: "pong", Duration: 12 * time.Second}, 1500},
		{core.Attempt{Phase: "breakout", Duration: 48 * time.Second}, 1500},
		{core.Attempt{Phase: "death", Duration: 95 * time.Second, Won: true}, 4800},
		{core.Attempt{Phase: "death", Duration: 61500 * time.Millisecond, Won: true}, 5100},
	}
	for _, tt := range attempts {
		if _, err := store.SaveAttempt("paddlerush", tt.a, tt.score); err != nil {
			t.Fatalf("SaveAttempt() failed: %v", err)
		}
	}

	recent, err := store.RecentAttempts("paddlerush", 2)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(recent))
	}
	if recent[0].Score != 5100 || !recent[0].Won || recent[0].Duration != 61500*time.Millisecond {
		t.Errorf("newest attempt = %+v", recent[0])
	}

	stats, err := store.GetAttemptStats("paddlerush")
	if err != nil {
		t.Fatalf("GetAttemptStats() failed: %v", err)
	}
	if stats.Attempts != 4 || stats.Wins != 2 {
		t.Errorf("stats = %+v, expected 4 attempts and 2 wins", stats)
	}
	if stats.BestWin != 61500*time.Millisecond {
		t.Errorf("best win = %v, expected 1m1.5s", stats.BestWin)
	}
	if stats.ByPhase["death"] != 2 || stats.ByPhase["pong"] != 1 {
		t.Errorf("by phase = %v", stats.ByPhase)
	}
}

func TestStoreAttemptWithoutBoss(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveAttempt("paddlerush", core.Attempt{}, 300)
	if !errors.Is(err, ErrNoBoss) {
		t.Errorf("SaveAttempt() error = %v, expected ErrNoBoss", err)
	}

	stats, err := store.GetAttemptStats("paddlerush")
	if err != nil {
		t.Fatalf("GetAttemptStats() failed: %v", err)
	}
	if stats.Attempts != 0 || stats.BestWin != 0 {
		t.Errorf("stats = %+v, expected empty", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore("paddlerush", 100)
	store.SaveAttempt("paddlerush", core.Attempt{Phase: "pong"}, 100)
	store.SaveScore("paddlerush_boss", 300)

	if err := store.ClearScores("paddlerush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("paddlerush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if attempts, _ := store.RecentAttempts("paddlerush", 10); len(attempts) != 0 {
		t.Errorf("Expected 0 attempts after clear, got %d", len(attempts))
	}
	if scores, _ := store.TopScores("paddlerush_boss", 10); len(scores) != 1 {
		t.Error("Practice scores should not be affected by clearing the main game")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openStore(t)
	store.SaveScore("paddlerush", 100)
	store.SaveScore("paddlerush", 300)
	store.SaveScore("paddlerush_boss", 50)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	rush := stats["paddlerush"]
	if rush == nil || rush.GamesCount != 2 || rush.HighScore != 300 || rush.AvgScore != 200 {
		t.Errorf("paddlerush stats = %+v", rush)
	}
	if stats["paddlerush_boss"] == nil {
		t.Error("practice stats missing")
	}
}
