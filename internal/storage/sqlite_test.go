package storage

import (
	"path/filepath"
	"testing"

	"snakecoach/internal/core"
	"snakecoach/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndQuerySessions(t *testing.T) {
	store := openTestStore(t)

	records := []game.Record{
		{Mode: core.ModeLocal, Score: 3, SurvivalSecs: 40, MaxLength: 4, Cause: "boundary"},
		{Mode: core.ModeAI, Score: 9, SurvivalSecs: 120, MaxLength: 10, Cause: "self"},
		{Mode: core.ModeLocal, Score: 5, SurvivalSecs: 70, MaxLength: 6, Cause: "self"},
	}
	for _, rec := range records {
		id, err := store.SaveSession(rec)
		if err != nil {
			t.Fatalf("SaveSession(%+v) error: %v", rec, err)
		}
		if id <= 0 {
			t.Errorf("SaveSession() id = %d, expected positive", id)
		}
	}

	best, err := store.BestSessions(10)
	if err != nil {
		t.Fatalf("BestSessions() error: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("BestSessions() returned %d entries, expected 3", len(best))
	}
	if best[0].Score != 9 || best[1].Score != 5 || best[2].Score != 3 {
		t.Errorf("scores = %d,%d,%d, expected 9,5,3", best[0].Score, best[1].Score, best[2].Score)
	}
	if best[0].Mode != "ai" || best[0].Cause != "self" || best[0].MaxLength != 10 {
		t.Errorf("top entry = %+v", best[0])
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentSessions(2) returned %d entries", len(recent))
	}
	// Same CURRENT_TIMESTAMP second is possible, so order falls back to id.
	if recent[0].Score != 5 {
		t.Errorf("most recent score = %d, expected 5", recent[0].Score)
	}
}

func TestQueryLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(game.Record{Mode: core.ModeLocal, Score: i, Cause: "boundary"}); err != nil {
			t.Fatalf("SaveSession() error: %v", err)
		}
	}

	best, err := store.BestSessions(3)
	if err != nil {
		t.Fatalf("BestSessions() error: %v", err)
	}
	if len(best) != 3 {
		t.Errorf("BestSessions(3) returned %d entries", len(best))
	}
}

func TestEmptyStore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSessions(10)
	if err != nil {
		t.Fatalf("BestSessions() error: %v", err)
	}
	if len(best) != 0 {
		t.Errorf("BestSessions() on empty store returned %d entries", len(best))
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sessions.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	store.Close()

	// Reopen: schema migration must be idempotent.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	store.Close()
}
