package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server exposes the probe endpoints on their own listener, apart from
// anything else the process serves:
//
//	GET /health/live   process liveness, always OK
//	GET /health/ready  runs the configured checks
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	boundAddr  string
}

// NewServer builds a probe server for addr. Options apply to the
// readiness checks.
func NewServer(addr string, checks Checks, opts ...Option) *Server {
	cfg := newConfig(opts...)

	router := chi.NewRouter()
	router.Get("/health/live", LivenessHandler())
	router.Get("/health/ready", ReadinessHandler(checks, opts...))

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: cfg.logger,
	}
}

// Start binds the listener and serves probes in the background. A bad
// address surfaces here, not later.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("health: listen %s: %w", s.httpServer.Addr, err)
	}
	s.boundAddr = ln.Addr().String()

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("probe server failed", slog.Any("error", err))
		}
	}()

	s.logger.Info("probe server started", slog.String("address", s.boundAddr))
	return nil
}

// Stop shuts the server down, waiting for in-flight probe requests up
// to the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr reports the bound address once Start has returned. Useful with
// ":0" addresses.
func (s *Server) Addr() string {
	return s.boundAddr
}

// StartFunc returns a startup function for the probe server.
func (s *Server) StartFunc() func(context.Context) error {
	return func(ctx context.Context) error {
		return s.Start(ctx)
	}
}

// Shutdown returns a shutdown function for the probe server.
func (s *Server) Shutdown() func(context.Context) error {
	return func(ctx context.Context) error {
		return s.Stop(ctx)
	}
}
