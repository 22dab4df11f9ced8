// Package tui provides the Bubble Tea integration for the puzzle platform.
// It maps keys and mouse clicks to input frames, draws the screen buffer
// and records solves.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

// statusLines is the number of terminal rows kept below the game screen.
const statusLines = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for one puzzle session. It is event
// driven: every key press or click becomes one Step call.
type GameModel struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	help          help.Model
	gameState     core.GameState
	status        string
	player        string
	screenshotDir string
	allowBack     bool
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a model for the given game and resets it.
// store may be nil, in which case solves are not recorded.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	screenH := max(cfg.ScreenH-statusLines, 0)
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: screenH, Seed: cfg.Seed})

	return GameModel{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, screenH),
		store:         store,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		help:          h,
		gameState:     game.State(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// WithPlayer attributes recorded solves to name.
func (m GameModel) WithPlayer(name string) GameModel {
	m.player = name
	return m
}

// WithBack lets Esc/B leave the game, for sessions that return to a menu.
func (m GameModel) WithBack() GameModel {
	m.allowBack = true
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	isQuit := m.keyMapper.MapKeyToFrame(msg, &frame)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case frame.Has(core.ActionBack):
		if m.allowBack {
			m.backToMenu = true
		}
		return m, nil
	case frame.Empty():
		return m, nil
	}

	m.step(frame)
	return m, nil
}

// handleMouse turns a left click on a tile into a selection.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	pointer, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}

	if index, hit := pointer.HitTest(msg.X, msg.Y); hit {
		m.step(core.SelectFrame(index))
	}
	return m, nil
}

// handleResize processes window resize events without resetting the board.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	screenH := max(msg.Height-statusLines, 0)
	m.screen.Resize(msg.Width, screenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, screenH)
	}

	return m, nil
}

// step feeds one input frame to the game and records a solve when a
// shuffled board is brought back to goal order.
func (m *GameModel) step(in core.InputFrame) {
	result := m.game.Step(in)
	m.gameState = result.State

	if in.Has(core.ActionShuffle) {
		m.status = ""
	}

	if !result.JustWon || !result.State.Shuffled {
		return
	}

	m.status = fmt.Sprintf("Solved in %d moves", result.State.Moves)
	if m.store == nil {
		return
	}

	best, bestErr := m.store.BestMoves(m.game.ID())
	if _, err := m.store.SaveSolveFor(m.game.ID(), m.player, result.State.Moves); err != nil {
		m.status += " (record not saved: " + err.Error() + ")"
		return
	}
	if bestErr != nil {
		return
	}

	if best == 0 || result.State.Moves < best {
		m.status += " - new record!"
	} else {
		m.status += fmt.Sprintf(" (record: %d)", best)
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fifteen-screenshots")
	}
	return filepath.Join(home, ".fifteen", "screenshots")
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := m.status
	if status == "" {
		status = m.help.View(m.keyMapper.Keys())
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status)
}

// State returns the game state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
