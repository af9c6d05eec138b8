// Package server exposes the tooltip pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz      liveness and build info
//	POST /v1/views     store a JSON data view, returns its hash
//	POST /v1/tooltips  build tooltips for an inline or stored view
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// whose code is one of the pkg/errors codes:
//
//	{"error": {"code": "INVALID_INDEX", "message": "point index 9 out of range (have 2)"}, "requestId": "..."}
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tooltipkit/pkg/pipeline"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 8 << 20

// Server is the HTTP API.
type Server struct {
	runner       *pipeline.Runner
	logger       *log.Logger
	maxBodyBytes int64
	readTimeout  time.Duration
	writeTimeout time.Duration
	router       chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBodyBytes caps request bodies at n bytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithTimeouts sets the http.Server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout, s.writeTimeout = read, write
	}
}

// New creates a server backed by runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:       runner,
		logger:       logger,
		maxBodyBytes: DefaultMaxBodyBytes,
		readTimeout:  10 * time.Second,
		writeTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/views", s.handleStoreView)
		r.Post("/tooltips", s.handleTooltips)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r))
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
