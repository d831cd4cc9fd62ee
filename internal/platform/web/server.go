// Package web streams the simulation to browser renderers over WebSocket.
// Each connection plays its own game; the server sends snapshot and event
// frames as JSON and accepts thrust and restart commands.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/vovakirdan/seed-of-life/internal/sim"
)

// Config holds configuration for the WebSocket server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the number of simulation ticks per second.
	TickRate int

	// Params tunes every session's simulation.
	Params sim.Params

	// OriginPatterns lists extra origins allowed to connect. Same-origin
	// requests are always accepted.
	OriginPatterns []string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
		Params:   sim.DefaultParams(),
	}
}

// Server serves game sessions at /ws and a health check at /healthz.
type Server struct {
	config Config
	logger *log.Logger
	mux    *http.ServeMux
}

// NewServer creates a new WebSocket server.
func NewServer(cfg Config) *Server {
	s := &Server{
		config: cfg,
		logger: log.Default().WithPrefix("ws"),
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /ws", s.handleSession)
	s.mux.HandleFunc("GET /healthz", handleHealth)
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down.
// Cancelling ctx also ends every open session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("starting WebSocket server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down WebSocket server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.OriginPatterns,
	})
	if err != nil {
		s.logger.Warn("failed to accept", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()

	start := time.Now()
	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started")

	err = newSession(conn, s.config.Params, s.config.TickRate, logger).run(r.Context())
	switch {
	case err == nil:
		conn.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, context.Canceled):
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	default:
		logger.Warn("session failed", "error", err)
	}

	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
