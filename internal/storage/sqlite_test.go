package storage

import (
	"database/sql"
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

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve("fifteen", 80); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestMoves("fifteen")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 80 {
		t.Errorf("BestMoves() = %d, expected 80", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, moves := range []int{120, 64, 300} {
		if _, err := store.SaveSolve("fifteen", moves); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	if _, err := store.SaveSolve("fifteen_solvable", 40); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	solves, err := store.BestSolves("fifteen", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}

	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(solves))
	}

	// Fewest moves first
	expected := []int{64, 120, 300}
	for i, e := range expected {
		if solves[i].Moves != e {
			t.Errorf("solves[%d].Moves = %d, expected %d", i, solves[i].Moves, e)
		}
		if solves[i].GameID != "fifteen" {
			t.Errorf("solves[%d].GameID = %s, expected fifteen", i, solves[i].GameID)
		}
		if solves[i].CreatedAt.IsZero() {
			t.Errorf("solves[%d].CreatedAt was not parsed", i)
		}
	}

	other, err := store.BestSolves("fifteen_solvable", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 fifteen_solvable solve, got %d", len(other))
	}
}

func TestStoreBestSolvesLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveSolve("fifteen", 50)
	second, _ := store.SaveSolve("fifteen", 50)
	for i := range 5 {
		store.SaveSolve("fifteen", 100+i)
	}

	solves, err := store.BestSolves("fifteen", 3)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves with limit, got %d", len(solves))
	}
	if solves[0].ID != first || solves[1].ID != second {
		t.Errorf("ties should keep insertion order: got IDs %d, %d", solves[0].ID, solves[1].ID)
	}
	if solves[2].Moves != 100 {
		t.Errorf("solves[2].Moves = %d, expected 100", solves[2].Moves)
	}

	// Non-positive limit falls back to 10
	solves, _ = store.BestSolves("fifteen", 0)
	if len(solves) != 7 {
		t.Errorf("Expected all 7 solves with default limit, got %d", len(solves))
	}
}

func TestStoreSaveSolveRejectsZeroMoves(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve("fifteen", 0); err == nil {
		t.Error("SaveSolve() with 0 moves should fail")
	}
	if _, err := store.SaveSolve("fifteen", -3); err == nil {
		t.Error("SaveSolve() with negative moves should fail")
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestMoves("fifteen")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a variant without records, got %d", best)
	}

	store.SaveSolve("fifteen", 210)
	store.SaveSolve("fifteen", 95)
	store.SaveSolve("fifteen", 130)

	best, err = store.BestMoves("fifteen")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 95 {
		t.Errorf("Expected best of 95, got %d", best)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve("fifteen", 100)
	store.SaveSolve("fifteen", 200)
	store.SaveSolve("fifteen_solvable", 300)

	if err := store.ClearSolves("fifteen"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	solves, _ := store.BestSolves("fifteen", 10)
	if len(solves) != 0 {
		t.Errorf("Expected 0 fifteen solves after clear, got %d", len(solves))
	}

	other, _ := store.BestSolves("fifteen_solvable", 10)
	if len(other) != 1 {
		t.Error("fifteen_solvable records should not be affected by clearing fifteen")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("fifteen")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Solves != 0 || stats.BestMoves != 0 || !stats.LastSolved.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}

	store.SaveSolve("fifteen", 100)
	store.SaveSolve("fifteen", 200)

	stats, err = store.GetGameStats("fifteen")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Solves != 2 {
		t.Errorf("Solves = %d, expected 2", stats.Solves)
	}
	if stats.BestMoves != 100 {
		t.Errorf("BestMoves = %d, expected 100", stats.BestMoves)
	}
	if stats.AvgMoves != 150 {
		t.Errorf("AvgMoves = %v, expected 150", stats.AvgMoves)
	}
	if time.Since(stats.LastSolved) > 24*time.Hour {
		t.Errorf("LastSolved = %v, expected a recent time", stats.LastSolved)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve("fifteen", 90)
	store.SaveSolve("fifteen", 110)
	store.SaveSolve("fifteen_solvable", 70)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["fifteen"].Solves != 2 || all["fifteen"].BestMoves != 90 {
		t.Errorf("fifteen stats = %+v", all["fifteen"])
	}
	if all["fifteen_solvable"].BestMoves != 70 {
		t.Errorf("fifteen_solvable stats = %+v", all["fifteen_solvable"])
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.fifteen/records.db", filepath.Join(home, ".fifteen/records.db")},
		{"/tmp/records.db", "/tmp/records.db"},
		{"records.db", "records.db"},
		{"", ""},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestStoreSaveSolveForKeepsPlayer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolveFor("fifteen", "alice", 60); err != nil {
		t.Fatalf("SaveSolveFor() failed: %v", err)
	}
	if _, err := store.SaveSolve("fifteen", 70); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	solves, err := store.BestSolves("fifteen", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("BestSolves() returned %d entries, expected 2", len(solves))
	}
	if solves[0].Player != "alice" {
		t.Errorf("solves[0].Player = %q, expected alice", solves[0].Player)
	}
	if solves[1].Player != "" {
		t.Errorf("solves[1].Player = %q, expected empty", solves[1].Player)
	}
}

func TestStoreOpenUpgradesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO solves (game_id, moves) VALUES ('fifteen', 42);
	`)
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveSolveFor("fifteen", "bob", 40); err != nil {
		t.Fatalf("SaveSolveFor() after upgrade failed: %v", err)
	}
	solves, err := store.BestSolves("fifteen", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 2 || solves[0].Player != "bob" || solves[1].Moves != 42 {
		t.Errorf("BestSolves() = %+v, expected bob's 40 then the old 42", solves)
	}
}
