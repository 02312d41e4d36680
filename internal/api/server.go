package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"time-travel-tasks/internal/config"
)

// Server wraps the HTTP server that serves the API.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// NewServer creates a server for handler using the HTTP settings in cfg.
func NewServer(cfg config.HTTPConfig, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		log: log,
	}
}

// Listen binds the configured address. Serve the returned listener with Serve.
func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.httpServer.Addr)
}

// Serve accepts connections on ln until Shutdown is called.
// It returns nil after a graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("tasks API listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for active requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down tasks API")
	return s.httpServer.Shutdown(ctx)
}
