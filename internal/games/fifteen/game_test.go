package fifteen

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func TestResetStartsSolved(t *testing.T) {
	g := newTestGame(42)
	snap := g.Snapshot()

	for i := 0; i < puzzle.Size-1; i++ {
		if snap.Tiles[i] != i+1 {
			t.Fatalf("Tiles[%d] = %d, expected %d", i, snap.Tiles[i], i+1)
		}
	}
	if snap.Tiles[15] != 0 || snap.Empty != 15 {
		t.Errorf("blank at %d (tile %d), expected slot 15", snap.Empty, snap.Tiles[15])
	}
	if got := snap.Movable; len(got) != 2 || got[0] != 11 || got[1] != 14 {
		t.Errorf("Movable = %v, expected [11 14]", got)
	}
	if !snap.Solved {
		t.Error("new game should be solved")
	}
	if snap.Won || snap.Message != "" {
		t.Error("win message should not show before a move")
	}
	if snap.Shuffled {
		t.Error("new game should not be shuffled")
	}
	if snap.Variant != "fifteen" {
		t.Errorf("Variant = %s, expected fifteen", snap.Variant)
	}
}

func TestStepPointerSelect(t *testing.T) {
	g := newTestGame(42)

	result := g.Step(core.SelectFrame(14))
	if !result.Accepted {
		t.Fatal("selecting slot 14 next to the blank should be accepted")
	}
	if result.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", result.State.Moves)
	}
	if g.Cursor() != 14 {
		t.Errorf("Cursor() = %d, expected 14 after pointer select", g.Cursor())
	}
	if g.Puzzle().EmptyIndex() != 14 {
		t.Errorf("EmptyIndex() = %d, expected 14", g.Puzzle().EmptyIndex())
	}
}

func TestStepRejectedSelect(t *testing.T) {
	g := newTestGame(42)
	before := g.Snapshot()

	for _, idx := range []int{0, 15, 10, 99, -1} {
		result := g.Step(core.SelectFrame(idx))
		if result.Accepted {
			t.Errorf("Select(%d) should be rejected from the solved board", idx)
		}
	}

	after := g.Snapshot()
	if after.Tiles != before.Tiles || after.Moves != before.Moves || after.Empty != before.Empty {
		t.Error("rejected selects should leave the board untouched")
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := newTestGame(42)

	steps := []struct {
		action   core.Action
		expected int
	}{
		{core.ActionUp, 0},
		{core.ActionLeft, 0},
		{core.ActionRight, 1},
		{core.ActionRight, 2},
		{core.ActionRight, 3},
		{core.ActionRight, 3},
		{core.ActionDown, 7},
		{core.ActionDown, 11},
		{core.ActionDown, 15},
		{core.ActionDown, 15},
		{core.ActionLeft, 14},
	}

	for i, s := range steps {
		result := g.Step(core.ActionFrame(s.action))
		if result.Accepted {
			t.Errorf("step %d: cursor movement should not move tiles", i)
		}
		if g.Cursor() != s.expected {
			t.Errorf("step %d (%s): Cursor() = %d, expected %d", i, s.action, g.Cursor(), s.expected)
		}
	}
}

func TestConfirmSelectsCursor(t *testing.T) {
	g := newTestGame(42)

	// Cursor starts at slot 0, which is not next to the blank.
	if g.Step(core.ActionFrame(core.ActionConfirm)).Accepted {
		t.Error("confirm on slot 0 should be rejected")
	}

	for _, a := range []core.Action{core.ActionDown, core.ActionDown, core.ActionRight, core.ActionRight, core.ActionRight} {
		g.Step(core.ActionFrame(a))
	}
	if g.Cursor() != 11 {
		t.Fatalf("Cursor() = %d, expected 11", g.Cursor())
	}

	result := g.Step(core.ActionFrame(core.ActionConfirm))
	if !result.Accepted {
		t.Error("confirm on slot 11 should slide it down")
	}
	if g.Puzzle().Board()[15] != 12 {
		t.Errorf("slot 15 = %d, expected 12", g.Puzzle().Board()[15])
	}
}

func TestShuffleResetsMoves(t *testing.T) {
	g := newTestGame(7)
	g.Step(core.SelectFrame(14))
	g.Step(core.SelectFrame(15))

	if !g.State().Won {
		t.Fatal("sliding back should raise the win message")
	}

	for round := range 2 {
		result := g.Step(core.ActionFrame(core.ActionShuffle))
		if result.State.Moves != 0 {
			t.Errorf("round %d: Moves = %d after shuffle, expected 0", round, result.State.Moves)
		}
		if result.State.Won {
			t.Errorf("round %d: shuffle should clear the win message", round)
		}
		if !result.State.Shuffled {
			t.Errorf("round %d: state should be marked shuffled", round)
		}
		if !puzzle.Valid(g.Puzzle().Board()) {
			t.Errorf("round %d: shuffled board is not a valid permutation", round)
		}
	}
}

func TestJustWonOnlyOnRaisingMove(t *testing.T) {
	g := newTestGame(42)

	if g.Step(core.SelectFrame(14)).JustWon {
		t.Error("leaving the goal should not count as a win")
	}
	if !g.Step(core.SelectFrame(15)).JustWon {
		t.Error("returning to the goal should raise the win message")
	}
	if g.Step(core.SelectFrame(11)).JustWon {
		t.Error("moving away should not raise again")
	}
	if g.Step(core.SelectFrame(15)).JustWon {
		t.Error("message already up, so no second win event")
	}
	if !g.State().Won {
		t.Error("message should stay up until shuffle")
	}
}

func TestDeterministicShuffle(t *testing.T) {
	g1 := newTestGame(12345)
	g1.Step(core.ActionFrame(core.ActionShuffle))

	g2 := newTestGame(12345)
	g2.Step(core.ActionFrame(core.ActionShuffle))

	if g1.Snapshot().Tiles != g2.Snapshot().Tiles {
		t.Errorf("same seed should produce same shuffle:\n%v\nvs\n%v", g1.Snapshot().Tiles, g2.Snapshot().Tiles)
	}
}

func TestSolvableVariant(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := NewSolvable()
		g.Reset(testConfig(seed))
		g.Step(core.ActionFrame(core.ActionShuffle))

		if !g.Snapshot().Solvable {
			t.Fatalf("seed %d: solvable variant produced an unsolvable board", seed)
		}
	}
	if NewSolvable().ID() != "fifteen_solvable" {
		t.Errorf("ID() = %s, expected fifteen_solvable", NewSolvable().ID())
	}
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if g.Step(core.SelectFrame(14)).Accepted {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Error("too-small screen should show a resize hint")
	}

	g.Resize(80, 24)
	if !g.Step(core.SelectFrame(14)).Accepted {
		t.Error("input should work after resizing")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(3)
	g.Step(core.ActionFrame(core.ActionShuffle))
	before := g.Snapshot()

	g.Resize(100, 40)

	after := g.Snapshot()
	if after.Tiles != before.Tiles || after.Empty != before.Empty || after.Moves != before.Moves {
		t.Error("Resize should not change the puzzle")
	}
}

func TestHitTest(t *testing.T) {
	g := newTestGame(42)

	// Board is 21 wide, centered in 80 columns: x origin 29, y origin 4.
	tests := []struct {
		name  string
		x, y  int
		index int
		ok    bool
	}{
		{"slot 0 label", 31, 5, 0, true},
		{"slot 5 left edge", 35, 7, 5, true},
		{"slot 15 right edge", 48, 11, 15, true},
		{"top-left corner border", 29, 4, 0, false},
		{"grid line between rows", 31, 6, 0, false},
		{"outside board", 5, 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := g.HitTest(tc.x, tc.y)
			if ok != tc.ok || (ok && idx != tc.index) {
				t.Errorf("HitTest(%d, %d) = (%d, %v), expected (%d, %v)", tc.x, tc.y, idx, ok, tc.index, tc.ok)
			}
		})
	}
}

func TestRenderShowsMovesAndMessage(t *testing.T) {
	g := newTestGame(42)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Moves: 0") {
		t.Error("HUD should show the move counter")
	}
	if strings.Contains(out, config.DefaultWinMessage) {
		t.Error("win message should not show before a move")
	}

	g.Step(core.SelectFrame(14))
	g.Step(core.SelectFrame(15))
	g.Render(screen)
	out = screen.String()

	if !strings.Contains(out, "Moves: 2") {
		t.Error("HUD should show two moves")
	}
	if !strings.Contains(out, config.DefaultWinMessage) {
		t.Error("win message should show after solving")
	}
}

func TestRenderTileColors(t *testing.T) {
	g := newTestGame(42)
	g.Step(core.SelectFrame(14))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Slot 0 holds 1 (in place); slot 15 now holds 15 (misplaced).
	r0 := g.cellRect(0)
	if c := screen.GetCell(r0.X+2, r0.Y); c.Rune != '1' || c.Color != core.ColorBrightGreen {
		t.Errorf("slot 0 cell = %+v, expected green '1'", c)
	}
	r15 := g.cellRect(15)
	if c := screen.GetCell(r15.X+1, r15.Y); c.Rune != '1' || c.Color != core.ColorBrightWhite {
		t.Errorf("slot 15 cell = %+v, expected white '1'", c)
	}
}

func TestOnStartShuffle(t *testing.T) {
	cfg := config.DefaultFifteenConfig()
	cfg.Shuffle.OnStart = true
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultFifteenConfig()) })

	g := newTestGame(9)
	if !g.State().Shuffled {
		t.Error("on_start should shuffle during Reset")
	}
	if g.State().Moves != 0 {
		t.Errorf("Moves = %d, expected 0", g.State().Moves)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"fifteen", "fifteen_solvable"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q should be registered", id)
		}
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, game.ID())
		}
		if _, ok := game.(registry.Pointer); !ok {
			t.Errorf("variant %q should support pointer selection", id)
		}
	}
}
