package puzzle

// Rand is the random source used by Shuffle. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// ShufflePolicy selects how Shuffle treats permutation parity.
type ShufflePolicy string

const (
	// ShuffleUniform accepts any permutation, solvable or not.
	ShuffleUniform ShufflePolicy = "uniform"
	// ShuffleSolvable repairs parity after shuffling so the board can be solved.
	ShuffleSolvable ShufflePolicy = "solvable"
)

// ParsePolicy maps a config string to a policy, falling back to uniform.
func ParsePolicy(s string) ShufflePolicy {
	if ShufflePolicy(s) == ShuffleSolvable {
		return ShuffleSolvable
	}
	return ShuffleUniform
}

// State is a single puzzle: the board, the cached blank position, the move
// counter and the win message flag. It is owned by one controller and is
// not safe for concurrent use.
type State struct {
	board Board
	empty int
	moves int
	won   bool
}

// New returns a puzzle in solved order with no moves made.
func New() *State {
	return &State{
		board: Solved(),
		empty: Size - 1,
	}
}

// FromBoard returns a puzzle holding b. The second result is false when b is
// not a permutation of {1..15, Empty}.
func FromBoard(b Board) (*State, bool) {
	if !Valid(b) {
		return nil, false
	}
	return &State{
		board: b,
		empty: EmptyIndex(b),
	}, true
}

// Board returns a copy of the current arrangement.
func (s *State) Board() Board {
	return s.board
}

// EmptyIndex returns the cached position of the blank.
func (s *State) EmptyIndex() int {
	return s.empty
}

// Moves returns the number of accepted moves since the last shuffle.
func (s *State) Moves() int {
	return s.moves
}

// Won reports whether the win message is showing. It is set by the check
// after an accepted move and cleared only by Shuffle.
func (s *State) Won() bool {
	return s.won
}

// Solved reports whether the current board is in goal order.
func (s *State) Solved() bool {
	return IsSolved(s.board)
}

// Shuffle permutes all slots uniformly with Fisher-Yates, resets the move
// counter, clears the win message and relocates the blank. Parity is not
// checked, so about half of the results cannot be solved.
func (s *State) Shuffle(rng Rand) {
	for i := Size - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.board[i], s.board[j] = s.board[j], s.board[i]
	}
	s.moves = 0
	s.won = false
	s.empty = EmptyIndex(s.board)
}

// ShuffleSolvable shuffles like Shuffle, then swaps the first two labelled
// slots if the result has the wrong parity.
func (s *State) ShuffleSolvable(rng Rand) {
	s.Shuffle(rng)
	if Solvable(s.board) {
		return
	}
	a, b := -1, -1
	for i, t := range s.board {
		if t.IsEmpty() {
			continue
		}
		if a < 0 {
			a = i
			continue
		}
		b = i
		break
	}
	s.board[a], s.board[b] = s.board[b], s.board[a]
}

// ShuffleWith dispatches to the shuffle matching policy.
func (s *State) ShuffleWith(rng Rand, policy ShufflePolicy) {
	if policy == ShuffleSolvable {
		s.ShuffleSolvable(rng)
		return
	}
	s.Shuffle(rng)
}

// Select slides the tile at index into the blank if the two slots share an
// edge. Returns false and leaves the state untouched otherwise.
func (s *State) Select(index int) bool {
	if !Adjacent(index, s.empty) {
		return false
	}
	s.board[s.empty], s.board[index] = s.board[index], s.board[s.empty]
	s.empty = index
	s.moves++
	s.checkWin()
	return true
}

// checkWin raises the win message when the board is solved.
// A raised message stays up until the next shuffle.
func (s *State) checkWin() {
	if IsSolved(s.board) {
		s.won = true
	}
}

// Movable returns the slots that Select would currently accept, in
// ascending order.
func (s *State) Movable() []int {
	out := make([]int, 0, 4)
	for _, i := range []int{s.empty - Side, s.empty - 1, s.empty + 1, s.empty + Side} {
		if Adjacent(i, s.empty) {
			out = append(out, i)
		}
	}
	return out
}
