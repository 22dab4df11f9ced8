// Package puzzle implements the rules of the 4x4 sliding-tile puzzle:
// board layout, shuffling, move validation, and the solved check.
// It has no rendering or input concerns; those live in the platform layers.
package puzzle

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

const (
	// Side is the number of rows and columns on the board.
	Side = 4
	// Size is the number of slots on the board.
	Size = Side * Side
)

// Tile is the label held by a slot. Labels run 1..15; Empty marks the blank.
type Tile int

// Empty is the blank slot marker.
const Empty Tile = 0

// IsEmpty reports whether the tile is the blank.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Board is the ordered sequence of slots, row-major.
type Board [Size]Tile

// Solved returns the goal arrangement: 1..15 followed by the blank.
func Solved() Board {
	var b Board
	for i := range Size - 1 {
		b[i] = Tile(i + 1)
	}
	b[Size-1] = Empty
	return b
}

// Row returns the grid row of a slot index.
func Row(index int) int {
	return index / Side
}

// Col returns the grid column of a slot index.
func Col(index int) int {
	return index % Side
}

// Index returns the slot index for a grid position.
func Index(row, col int) int {
	return row*Side + col
}

// InBounds reports whether index names a slot on the board.
func InBounds(index int) bool {
	return index >= 0 && index < Size
}

// Adjacent reports whether two slots share an edge on the grid.
// Slots that differ by 1 across a row boundary are not adjacent.
func Adjacent(a, b int) bool {
	if !InBounds(a) || !InBounds(b) {
		return false
	}
	return core.Abs(Row(a)-Row(b))+core.Abs(Col(a)-Col(b)) == 1
}

// IsSolved reports whether slots 0..14 hold 1..15 in order.
// The content of the last slot is not inspected.
func IsSolved(b Board) bool {
	for i := range Size - 1 {
		if b[i] != Tile(i+1) {
			return false
		}
	}
	return true
}

// EmptyIndex scans for the blank. Returns -1 if the board has none.
func EmptyIndex(b Board) int {
	for i, t := range b {
		if t.IsEmpty() {
			return i
		}
	}
	return -1
}

// Valid reports whether the board is a permutation of {1..15, Empty}.
func Valid(b Board) bool {
	var seen [Size]bool
	for _, t := range b {
		if t < Empty || int(t) >= Size || seen[t] {
			return false
		}
		seen[t] = true
	}
	return true
}

// Inversions counts pairs of labelled tiles that appear out of order.
func Inversions(b Board) int {
	n := 0
	for i := range Size {
		if b[i].IsEmpty() {
			continue
		}
		for j := i + 1; j < Size; j++ {
			if !b[j].IsEmpty() && b[i] > b[j] {
				n++
			}
		}
	}
	return n
}

// Solvable reports whether the goal arrangement can be reached from b with
// legal slides. On an even-width board this holds when the inversion count
// plus the blank's row counted from the bottom (1-based) is odd.
func Solvable(b Board) bool {
	empty := EmptyIndex(b)
	if empty < 0 {
		return false
	}
	rowFromBottom := Side - Row(empty)
	return (Inversions(b)+rowFromBottom)%2 == 1
}

// String renders the board as four rows of labels, with "." for the blank.
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 {
			if Col(i) == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if t.IsEmpty() {
			sb.WriteString(" .")
			continue
		}
		s := strconv.Itoa(int(t))
		if len(s) < 2 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String()
}
