package fifteen

import "github.com/vovakirdan/tui-fifteen/internal/puzzle"

// Snapshot captures the complete game state for tests and for front ends
// that render outside the screen buffer.
type Snapshot struct {
	Variant  string           `json:"variant"`
	Tiles    [puzzle.Size]int `json:"tiles"` // 0 marks the blank
	Empty    int              `json:"empty"`
	Movable  []int            `json:"movable"` // slots a select would accept
	Cursor   int              `json:"cursor"`
	Moves    int              `json:"moves"`
	Solved   bool             `json:"solved"`
	Won      bool             `json:"won"`
	Shuffled bool             `json:"shuffled"`
	Solvable bool             `json:"solvable"`
	Message  string           `json:"message"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.state.Board()

	var tiles [puzzle.Size]int
	for i, t := range board {
		tiles[i] = int(t)
	}

	return Snapshot{
		Variant:  string(g.mode),
		Tiles:    tiles,
		Empty:    g.state.EmptyIndex(),
		Movable:  g.state.Movable(),
		Cursor:   g.cursor,
		Moves:    g.state.Moves(),
		Solved:   g.state.Solved(),
		Won:      g.state.Won(),
		Shuffled: g.shuffled,
		Solvable: puzzle.Solvable(board),
		Message:  g.WinMessage(),
	}
}
