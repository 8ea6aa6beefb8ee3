package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(Run{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreIsPerProcess(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	save(t, a, "runner", 100)

	scores, err := b.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Error("separate stores must not share data")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{100, 50, 200} {
		save(t, store, "runner", score)
	}
	save(t, store, "racer", 500)

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	racer, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(racer) != 1 {
		t.Errorf("Expected 1 racer score, got %d", len(racer))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "stack", (i+1)*10)
	}

	scores, err := store.TopScores("stack", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openStore(t)
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	id, err := store.SaveRun(Run{
		GameID:   "tunnel",
		Player:   "alice",
		Score:    42,
		Duration: 95 * time.Second,
		At:       at,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("RecentRuns() returned %d runs, want 1", len(recent))
	}
	got := recent[0]
	if got.RunID != id || got.Player != "alice" || got.Score != 42 || got.Duration != 95*time.Second {
		t.Errorf("stored run = %+v", got)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openStore(t)

	run := Run{RunID: uuid.NewString(), GameID: "racer", Score: 1}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openStore(t)

	for _, id := range []string{"runner", "racer", "tunnel"} {
		save(t, store, id, 1)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].GameID != "tunnel" || recent[1].GameID != "racer" {
		t.Errorf("RecentRuns() = %v", recent)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	empty, err := store.GetGameStats("stack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "stack", Score: 10, Duration: time.Second})
	store.SaveRun(Run{GameID: "stack", Score: 30, Duration: 2 * time.Second})

	stats, err := store.GetGameStats("stack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PlayTime != 3*time.Second {
		t.Errorf("PlayTime = %v, want 3s", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	save(t, store, "runner", 5)
	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["stack"].HighScore != 30 || all["runner"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
