// Package web serves Lane Shift to browsers. Each websocket connection
// runs its own game on the server and streams snapshots to a DOM renderer;
// the client files are served from the offline asset cache.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/lane-shift/internal/assets"
	"github.com/vovakirdan/lane-shift/internal/config"
	"github.com/vovakirdan/lane-shift/internal/core"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
	"github.com/vovakirdan/lane-shift/internal/input"
	"github.com/vovakirdan/lane-shift/internal/storage"
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the simulation rate of every session.
	TickRate int

	// WriteTimeout bounds each websocket write.
	WriteTimeout time.Duration

	// Game is the game config each session is built from.
	Game config.LaneShiftConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:      ":8080",
		TickRate:     60,
		WriteTimeout: 5 * time.Second,
		Game:         config.DefaultLaneShiftConfig(),
	}
}

// Server routes HTTP and websocket traffic.
type Server struct {
	config   Config
	store    storage.Backend
	logger   *log.Logger
	router   *mux.Router
	cache    *assets.Cache
	upgrader websocket.Upgrader

	ctx      context.Context
	cancel   context.CancelFunc
	sessions sync.WaitGroup
}

// New creates a server. store may be nil.
func New(cfg Config, store storage.Backend, logger *log.Logger) (*Server, error) {
	cache, err := assets.NewCache(assets.Static(), assets.CacheName, assets.Files)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultConfig().WriteTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		cache:  cache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ctx:    ctx,
		cancel: cancel,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)
	r.HandleFunc("/api/best", s.handleBest).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(s.cache)
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	var best int
	if s.store != nil {
		var err error
		best, err = s.store.BestScore()
		if err != nil {
			s.logger.Warn("could not load best score", "error", err)
			http.Error(w, "best score unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bestResponse{Best: best})
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)

	game := laneshift.New(s.config.Game,
		laneshift.WithBestStore(s.store),
		laneshift.WithRunRecorder(s.store),
		laneshift.WithLogger(logger),
	)
	game.Reset(core.RuntimeConfig{TickRate: s.config.TickRate, Seed: time.Now().UnixNano()})

	sess := &session{
		id:           id,
		conn:         conn,
		game:         game,
		swipe:        input.NewSwipe(s.config.Game.Input.SwipeThreshold),
		tickRate:     s.config.TickRate,
		writeTimeout: s.config.WriteTimeout,
		logger:       logger,
	}

	s.sessions.Add(1)
	defer s.sessions.Done()

	logger.Info("session started", "remote", r.RemoteAddr)
	sess.run(s.ctx)
	logger.Info("session ended", "remote", r.RemoteAddr)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
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
		s.cancel()
		if ok {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server
	s.cancel()
	err := srv.Shutdown(shutdownCtx)
	s.sessions.Wait()
	return err
}

// Close stops all sessions. Used when the server was only mounted as a
// handler.
func (s *Server) Close() {
	s.cancel()
	s.sessions.Wait()
}
