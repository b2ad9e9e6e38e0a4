package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/config"
)

// maxHeaderBytes covers the session cookie with room to spare.
const maxHeaderBytes = 64 << 10

// Server owns the HTTP listener lifecycle.
type Server struct {
	env    string
	server *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		env: cfg.App.Env,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

// Start listens on the configured port and serves until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown. It returns http.ErrServerClosed after a
// graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	slog.Info("serving http",
		"addr", ln.Addr().String(),
		"env", s.env,
		"read_timeout", s.server.ReadTimeout,
		"write_timeout", s.server.WriteTimeout,
	)
	return s.server.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// such as a PDF export, until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
