// Package server exposes the palette, validator and prompt compiler over
// HTTP and runs photo transformations through an image generator.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmylchreest/hairhue/internal/imagegen"
	"github.com/jmylchreest/hairhue/internal/logging"
	"github.com/jmylchreest/hairhue/internal/palette"
	"github.com/jmylchreest/hairhue/internal/storage"
	"github.com/jmylchreest/hairhue/internal/store"
)

// Deps are the collaborators a Server needs. Palette and Generators are
// required.
type Deps struct {
	Palette      *palette.Palette
	Generators   *imagegen.Registry
	Uploader     storage.Uploader
	Recorder     store.Recorder
	Entitlements Entitlements
	Logger       hclog.Logger

	// Files serves published objects under /files when set.
	Files http.Handler
}

// Config holds server timeouts.
type Config struct {
	Addr             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	TransformTimeout time.Duration
}

// Server is the hairhue HTTP API.
type Server struct {
	deps   Deps
	config Config
	logger hclog.Logger
	router chi.Router
}

// New creates a server. Without a Recorder transformations are not recorded;
// without Entitlements premium colours are denied; without an Uploader only
// image_url transforms are accepted.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Palette == nil {
		return nil, errors.New("server: palette is required")
	}
	if deps.Generators == nil {
		deps.Generators = imagegen.NewRegistry()
	}
	if deps.Recorder == nil {
		deps.Recorder = store.Nop{}
	}
	if deps.Entitlements == nil {
		deps.Entitlements = StaticEntitlements(false)
	}
	if cfg.TransformTimeout <= 0 {
		cfg.TransformTimeout = 2 * time.Minute
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		deps:   deps,
		config: cfg,
		logger: logging.OrNull(deps.Logger),
	}
	s.router = s.setupRouter()
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(instrument(s.logger))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if s.deps.Files != nil {
		r.Handle("/files/*", http.StripPrefix("/files", s.deps.Files))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/palette", s.handleListPalette)
		r.Get("/palette/{id}/suggestions", s.handleSuggestions)
		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{id}", s.handleGetPreset)
		r.Post("/choices/validate", s.handleValidate)
		r.Post("/choices/prompt", s.handlePrompt)
		r.Post("/transform", s.handleTransform)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" not allowed")
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.config.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ErrorResponse is an API error body.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
