package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/funfun03/form-showcase/internal/config"
)

// Server owns the http.Server lifecycle; routing lives in the handler.
type Server struct {
	cfg    *config.Config
	server *http.Server
}

// New wraps handler in an http.Server configured from cfg
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    1 << 20, // 1 MB
			ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		},
	}
}

// Addr is the listen address, ":<port>".
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("Starting server",
		"addr", s.server.Addr,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
		"max_upload_bytes", s.cfg.Upload.MaxMultipartBytes,
	)

	return s.server.ListenAndServe()
}

// Shutdown drains in-flight form submissions within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
