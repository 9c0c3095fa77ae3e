package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/scenario"
	"github.com/crucible-tabletop/crucible/internal/sim"
)

// ServerConfig holds configuration for the spectator HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Match is the skirmish replayed for spectators.
	Match config.MatchConfig

	// EventDelay paces the broadcast so spectators can follow along.
	EventDelay time.Duration
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:    ":8080",
		Match:      config.Default(),
		EventDelay: 250 * time.Millisecond,
	}
}

// Server runs skirmishes in a loop and streams them to spectators.
type Server struct {
	config ServerConfig
	feed   *Feed
	logger *log.Logger
	http   *http.Server
}

// NewServer creates a spectator server for the given match setup.
func NewServer(cfg ServerConfig) (*Server, error) {
	if !scenario.Exists(cfg.Match.Scenario) {
		return nil, fmt.Errorf("web: unknown scenario %q", cfg.Match.Scenario)
	}
	if cfg.EventDelay <= 0 {
		cfg.EventDelay = 250 * time.Millisecond
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crucible-web",
	})

	srv := &Server{
		config: cfg,
		feed:   NewFeed(logger),
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.feed.Handler())
	mux.HandleFunc("/status", srv.handleStatus)

	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"scenario":   s.config.Match.Scenario,
		"red":        s.config.Match.Red.Tier().Name(),
		"blue":       s.config.Match.Blue.Tier().Name(),
		"spectators": s.feed.Spectators(),
	})
}

// ListenAndServe starts the HTTP listener and the match loop, blocking
// until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting spectator server", "address", s.config.Address)

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	s.matchLoop(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.feed.Close()
	return s.http.Shutdown(shutdownCtx)
}

// matchLoop replays the configured match with a fresh seed each pass.
func (s *Server) matchLoop(ctx context.Context) {
	seed := s.config.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for {
		if err := s.runMatch(ctx, seed); err != nil {
			s.logger.Error("match error", "error", err)
		}
		seed++

		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * s.config.EventDelay):
		}
	}
}

func (s *Server) runMatch(ctx context.Context, seed int64) error {
	state, err := scenario.Create(s.config.Match.Scenario)
	if err != nil {
		return err
	}

	runner, err := sim.New(state,
		s.config.Match.Red.Tier(), s.config.Match.Blue.Tier(),
		seed, s.config.Match.Rounds)
	if err != nil {
		return err
	}
	runner.SetLogger(s.logger)

	runner.OnEvent(func(ev sim.Event) {
		s.feed.Broadcast(ev)
		select {
		case <-ctx.Done():
		case <-time.After(s.config.EventDelay):
		}
	})

	res := runner.Run()
	s.logger.Info("match finished", "winner", res.Winner, "rounds", res.Rounds, "seed", seed)
	return nil
}
