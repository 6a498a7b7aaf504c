package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
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

func testRecording(game string, seed int64, frames int) replay.Recording {
	rec := replay.Recording{
		Game:     game,
		Seed:     seed,
		TickRate: 60,
		Config:   config.DefaultFlappyConfig(),
	}
	for i := 0; i < frames; i++ {
		rec.Frames = append(rec.Frames, replay.Frame{Dt: 16, Flap: i%10 == 0})
	}
	return rec
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	rec := testRecording("flappy", 42, 120)

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if run.ID != id || run.GameID != "flappy" || run.Seed != 42 || run.Ticks != 120 {
		t.Errorf("Unexpected run entry: %+v", run.RunEntry)
	}
	if run.Recording.Ticks() != 120 {
		t.Errorf("Expected 120 frames, got %d", run.Recording.Ticks())
	}
	if !run.Recording.Frames[0].Flap || run.Recording.Frames[1].Flap {
		t.Error("Frame inputs were not preserved")
	}
	if run.Recording.Config != rec.Config {
		t.Errorf("Config not preserved: %+v", run.Recording.Config)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveRun(testRecording("flappy", int64(i), i*10)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(testRecording("other", 9, 5)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("flappy", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 flappy runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Seed != 3 || runs[2].Seed != 1 {
		t.Errorf("Runs should be newest first, got seeds %d..%d", runs[0].Seed, runs[2].Seed)
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 2 || all[0].GameID != "other" {
		t.Errorf("Expected the 2 newest runs across games, got %+v", all)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun(404)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(testRecording("flappy", 1, 10))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.LoadRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Deleted run should be gone, got %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Errorf("Deleting a missing run should not fail: %v", err)
	}
}
