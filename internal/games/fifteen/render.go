package fifteen

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3

	boardW = puzzle.Side*cellWidth + 1  // +1 for right border
	boardH = puzzle.Side*cellHeight + 1 // +1 for bottom border

	// Minimum size: board plus HUD, message line and controls.
	minWidth  = boardW + 4
	minHeight = hudHeight + 1 + boardH + 4
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX, boardY := g.origin()

	g.renderHUD(dst, boardX)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
}

// origin returns the top-left corner of the board (centered horizontally).
func (g *Game) origin() (int, int) {
	return (g.screenW - boardW) / 2, hudHeight + 1
}

// cellRect returns the interior of a slot's cell on screen.
func (g *Game) cellRect(index int) core.Rect {
	boardX, boardY := g.origin()
	return core.NewRect(
		boardX+puzzle.Col(index)*cellWidth+1,
		boardY+puzzle.Row(index)*cellHeight+1,
		cellWidth-1,
		cellHeight-1,
	)
}

// HitTest maps a screen position to the slot drawn there.
func (g *Game) HitTest(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	for i := range puzzle.Size {
		if g.cellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, variant and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.state.Moves()))

	if g.shuffled && !puzzle.Solvable(g.state.Board()) {
		warn := "unsolvable"
		dst.DrawTextColor(boardX+boardW-len(warn), 1, warn, core.ColorGray)
	}
}

// renderGrid draws the 4x4 cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range puzzle.Side + 1 {
		for x := range puzzle.Side + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == puzzle.Side:
				corner = '┐'
			case y == puzzle.Side && x == 0:
				corner = '└'
			case y == puzzle.Side && x == puzzle.Side:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == puzzle.Side:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == puzzle.Side:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < puzzle.Side {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < puzzle.Side {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}
}

// renderTiles draws each label, colored by whether it sits on its goal
// slot, with brackets around the cursor.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	inPlace := core.ParseColor(g.display.InPlaceColor)
	misplaced := core.ParseColor(g.display.MisplacedColor)
	cursorColor := core.ParseColor(g.display.CursorColor)

	board := g.state.Board()
	for i, tile := range board {
		cell := g.cellRect(i)

		if i == g.cursor {
			dst.SetColor(cell.X, cell.Y, '[', cursorColor)
			dst.SetColor(cell.Right()-1, cell.Y, ']', cursorColor)
		}

		if tile.IsEmpty() {
			continue
		}

		label := strconv.Itoa(int(tile))
		color := misplaced
		if int(tile) == i+1 {
			color = inPlace
		}
		// Right-align on the cell's center column.
		cx, cy := cell.Center()
		dst.DrawTextColor(cx+1-len(label), cy, label, color)
	}
}

// renderFooter draws the win message and the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if msg := g.WinMessage(); msg != "" {
		x := (g.screenW - len(msg)) / 2
		dst.DrawTextColor(core.Clamp(x, 0, g.screenW), y+1, msg, core.ColorBrightYellow)
	}
	if g.display.ShowHelp {
		dst.DrawTextCentered(y+3, g.Controls())
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Cursor | Enter/Click: Slide | R: Shuffle | Q: Quit"
}
