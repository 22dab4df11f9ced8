// Package web serves the puzzle to browsers: an embedded HTML grid, a small
// JSON API and one websocket per open page.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

//go:embed static
var staticFiles embed.FS

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Virtual screen handed to games so their layout checks pass.
	virtualW = 80
	virtualH = 24

	defaultVariant = "fifteen"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Config holds settings for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Seed fixes the shuffle seed of the first connection; later
	// connections count up from it. Zero uses the clock.
	Seed int64
}

// Server is the HTTP front end.
type Server struct {
	config Config
	router *mux.Router
	store  *storage.Store
	logger *log.Logger
	conns  atomic.Int64
}

// NewServer creates a server. store and logger may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "fifteen-web",
		})
	}

	s := &Server{
		config: cfg,
		router: mux.NewRouter(),
		store:  store,
		logger: logger,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.Use(recovery(s.logger))
	s.router.Use(requestLogger(s.logger))

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/variants", s.handleVariants).Methods(http.MethodGet)
	api.HandleFunc("/records/{variant}", s.handleRecords).Methods(http.MethodGet)

	s.router.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded assets: %v", err))
	}
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(static)))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away, nothing to do
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVariants(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, registry.List())
}

// RecordsResponse is the body of GET /api/records/{variant}.
type RecordsResponse struct {
	Variant string               `json:"variant"`
	Solves  []storage.SolveEntry `json:"solves"`
	Stats   *storage.GameStats   `json:"stats,omitempty"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	variant := mux.Vars(r)["variant"]
	if !registry.Exists(variant) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown variant %q", variant))
		return
	}

	resp := RecordsResponse{Variant: variant, Solves: []storage.SolveEntry{}}
	if s.store != nil {
		solves, err := s.store.BestSolves(variant, 10)
		if err != nil {
			s.logger.Warn("could not load records", "variant", variant, "error", err)
			respondError(w, http.StatusInternalServerError, "could not load records")
			return
		}
		if solves != nil {
			resp.Solves = solves
		}
		if stats, err := s.store.GetGameStats(variant); err == nil {
			resp.Stats = stats
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// newGame creates and resets a game for one connection.
func (s *Server) newGame(variant string) (Game, error) {
	g, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	game, ok := g.(Game)
	if !ok {
		return nil, fmt.Errorf("web: variant %q has no snapshot", variant)
	}

	n := s.conns.Add(1)
	seed := time.Now().UnixNano()
	if s.config.Seed != 0 {
		seed = s.config.Seed + n - 1
	}
	game.Reset(core.RuntimeConfig{ScreenW: virtualW, ScreenH: virtualH, Seed: seed})
	return game, nil
}

// handleWebSocket runs the event loop for one browser page. The
// connection owns its puzzle; nothing is shared between connections.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")
	if variant == "" {
		variant = defaultVariant
	}

	game, err := s.newGame(variant)
	if err != nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown variant %q", variant))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("websocket connected", "variant", variant, "remote", r.RemoteAddr)
	defer s.logger.Info("websocket disconnected", "variant", variant, "remote", r.RemoteAddr)

	conn.SetReadLimit(maxMessageSize)
	sess := newSession(game, s.store, s.logger)

	if err := writeMessage(conn, sess.snapshot()); err != nil {
		return
	}

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				if err := writeMessage(conn, errorMessage("malformed message")); err != nil {
					return
				}
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket error", "error", err)
			}
			return
		}

		reply := sess.handle(msg)
		if reply.NewRecord {
			s.logger.Info("new record", "variant", variant, "moves", reply.State.Moves)
		}
		if err := writeMessage(conn, reply); err != nil {
			return
		}
	}
}

func writeMessage(conn *websocket.Conn, msg ServerMessage) error {
	//nolint:errcheck // A failed deadline surfaces on the write below
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
