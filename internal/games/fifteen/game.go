// Package fifteen adapts the sliding puzzle to the platform's Game interface:
// it dispatches input frames to the puzzle, tracks a keyboard cursor and
// draws the board into a screen buffer.
package fifteen

import (
	"math/rand"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/puzzle"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

// Mode identifies a registered variant.
type Mode string

const (
	// ModeClassic shuffles with the configured policy (uniform by default),
	// so the board may be unsolvable.
	ModeClassic Mode = "fifteen"
	// ModeSolvable always repairs parity after shuffling.
	ModeSolvable Mode = "fifteen_solvable"
)

// Game is one puzzle session.
type Game struct {
	mode    Mode
	policy  puzzle.ShufflePolicy
	display config.DisplayConfig
	onStart bool

	rng      *rand.Rand
	state    *puzzle.State
	cursor   int
	shuffled bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level config shared by new games. Set once at startup.
var (
	activeConfig = config.DefaultFifteenConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.FifteenConfig) {
	activeConfig = cfg
}

// New creates a classic game using the active config.
func New() *Game {
	return newGame(ModeClassic, puzzle.ParsePolicy(activeConfig.Shuffle.Policy))
}

// NewSolvable creates a game whose shuffles are always solvable.
func NewSolvable() *Game {
	return newGame(ModeSolvable, puzzle.ShuffleSolvable)
}

func newGame(mode Mode, policy puzzle.ShufflePolicy) *Game {
	return &Game{
		mode:    mode,
		policy:  policy,
		display: activeConfig.Display,
		onStart: activeConfig.Shuffle.OnStart,
		state:   puzzle.New(),
	}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeSolvable), func() registry.Game {
		return NewSolvable()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSolvable {
		return "15 Puzzle (Always Solvable)"
	}
	return "15 Puzzle"
}

// Reset puts the board back in solved order, or shuffles it straight away
// when the config asks for that.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = puzzle.New()
	g.cursor = 0
	g.shuffled = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.onStart {
		g.shuffle()
	}
}

// Resize updates the layout without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Step dispatches one input event: shuffle, cursor movement, or a tile
// selection by cursor or pointer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionShuffle) {
		g.shuffle()
		return core.StepResult{State: g.State(), Accepted: true}
	}

	g.moveCursor(in)

	index := puzzle.Size
	switch {
	case in.HasSelect():
		index = in.Selected
		if puzzle.InBounds(index) {
			g.cursor = index
		}
	case in.Has(core.ActionConfirm):
		index = g.cursor
	default:
		return core.StepResult{State: g.State()}
	}

	wasWon := g.state.Won()
	accepted := g.state.Select(index)

	return core.StepResult{
		State:    g.State(),
		Accepted: accepted,
		JustWon:  accepted && !wasWon && g.state.Won(),
	}
}

// shuffle applies the variant's shuffle policy.
func (g *Game) shuffle() {
	g.state.ShuffleWith(g.rng, g.policy)
	g.shuffled = true
}

// moveCursor applies directional actions to the keyboard cursor.
func (g *Game) moveCursor(in core.InputFrame) {
	row, col := puzzle.Row(g.cursor), puzzle.Col(g.cursor)

	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}

	row = core.Clamp(row, 0, puzzle.Side-1)
	col = core.Clamp(col, 0, puzzle.Side-1)
	g.cursor = puzzle.Index(row, col)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.state.Moves(),
		Won:      g.state.Won(),
		Shuffled: g.shuffled,
	}
}

// Cursor returns the slot under the keyboard cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Puzzle exposes the underlying puzzle state for read-only inspection.
func (g *Game) Puzzle() *puzzle.State {
	return g.state
}

// WinMessage returns the message to show, or "" while it is not raised.
func (g *Game) WinMessage() string {
	if !g.state.Won() {
		return ""
	}
	return g.display.WinMessage
}
