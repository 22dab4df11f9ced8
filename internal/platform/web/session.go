package web

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

// Message types exchanged over the websocket.
const (
	TypeSelect  = "select"
	TypeShuffle = "shuffle"
	TypeState   = "state"
	TypeError   = "error"
)

// Game is a registered variant that can also describe itself as JSON.
type Game interface {
	registry.Game
	Snapshot() fifteen.Snapshot
}

// ClientMessage is one event sent by the browser.
type ClientMessage struct {
	Type  string `json:"type"`
	Index *int   `json:"index,omitempty"`
}

// ServerMessage is the reply to every client event.
type ServerMessage struct {
	Type      string            `json:"type"`
	State     *fifteen.Snapshot `json:"state,omitempty"`
	Accepted  bool              `json:"accepted"`
	NewRecord bool              `json:"new_record,omitempty"`
	Best      int               `json:"best,omitempty"`
	Error     string            `json:"error,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}

// session owns the puzzle for one websocket connection. Events are
// handled one at a time by the connection's read loop.
type session struct {
	game   Game
	store  *storage.Store
	logger *log.Logger
}

func newSession(game Game, store *storage.Store, logger *log.Logger) *session {
	return &session{game: game, store: store, logger: logger}
}

// snapshot returns the current state without changing it.
func (s *session) snapshot() ServerMessage {
	snap := s.game.Snapshot()
	return ServerMessage{Type: TypeState, State: &snap, Best: s.best()}
}

// handle applies one client event and builds the reply.
func (s *session) handle(msg ClientMessage) ServerMessage {
	var frame core.InputFrame

	switch msg.Type {
	case TypeSelect:
		if msg.Index == nil {
			return errorMessage("select needs an index")
		}
		frame = core.SelectFrame(*msg.Index)
	case TypeShuffle:
		frame = core.ActionFrame(core.ActionShuffle)
	case TypeState:
		return s.snapshot()
	default:
		return errorMessage(fmt.Sprintf("unknown message type %q", msg.Type))
	}

	result := s.game.Step(frame)
	reply := s.snapshot()
	reply.Accepted = result.Accepted

	if result.JustWon && result.State.Shuffled && s.store != nil {
		best := reply.Best
		if _, err := s.store.SaveSolve(s.game.ID(), result.State.Moves); err != nil {
			s.logger.Warn("could not save solve", "variant", s.game.ID(), "moves", result.State.Moves, "error", err)
			reply.Warning = "record not saved"
		} else {
			reply.NewRecord = best == 0 || result.State.Moves < best
			reply.Best = s.best()
		}
	}

	return reply
}

// best returns the record for this variant, or 0 without storage.
func (s *session) best() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.BestMoves(s.game.ID())
	if err != nil {
		return 0
	}
	return best
}

func errorMessage(text string) ServerMessage {
	return ServerMessage{Type: TypeError, Error: text}
}
