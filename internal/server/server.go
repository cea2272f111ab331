// Package server exposes the lint engine over HTTP.
//
// Routes:
//
//	POST /lint   {content, strict?, rules?}             -> lint report
//	POST /fix    {content, fix_mode?, strict?, rules?}  -> fix result
//	GET  /rules                                         -> rule catalog
//	GET  /health                                        -> liveness
//
// Request bodies are capped before the engine sees them. When an API token is
// configured every route except /health requires it as a bearer token.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/autolint/internal/config"
	"github.com/leapstack-labs/autolint/pkg/core"
	"github.com/leapstack-labs/autolint/pkg/lint"
)

// Server serves the lint API.
type Server struct {
	engine          *lint.Engine
	addr            string
	maxBodyBytes    int64
	apiToken        string
	defaultFixMode  core.FixMode
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Config holds configuration for the server.
type Config struct {
	Engine *lint.Engine
	Server config.ServerConfig
	// DefaultFixMode applies when a fix request omits fix_mode.
	DefaultFixMode core.FixMode
	Logger         *slog.Logger
}

// New creates a server. Zero-valued settings fall back to the defaults.
func New(cfg Config) (*Server, error) {
	if cfg.Engine == nil {
		return nil, errors.New("server: engine is required")
	}
	s := &Server{
		engine:          cfg.Engine,
		addr:            cfg.Server.Addr,
		maxBodyBytes:    cfg.Server.MaxBodyBytes,
		apiToken:        cfg.Server.APIToken,
		defaultFixMode:  cfg.DefaultFixMode,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		logger:          cfg.Logger,
	}
	if s.addr == "" {
		s.addr = config.DefaultAddr
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = config.DefaultMaxBodyBytes
	}
	if s.defaultFixMode == "" {
		s.defaultFixMode = core.FixModeSafe
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = config.DefaultShutdownTimeout
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		s.requestID,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		r.Post("/lint", s.handleLint)
		r.Post("/fix", s.handleFix)
		r.Get("/rules", s.handleRules)
	})

	return r
}

// Serve listens on the configured address and blocks until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting server", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
