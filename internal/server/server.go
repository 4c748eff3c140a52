// Package server provides the HTTP REST API for the posting optimizer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/posting-optimizer/internal/engine"
	"github.com/jonathan/posting-optimizer/internal/logger"
	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/store"
	"github.com/jonathan/posting-optimizer/internal/wordpress"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	store      *store.Store      // nil when no database is configured
	content    *wordpress.Client // nil when no content system is configured
	validate   *validator.Validate
	log        *slog.Logger
}

// Config holds server configuration.
type Config struct {
	Port            int
	DatabaseURL     string
	ContentBaseURL  string
	ContentPostType string
	ContentUser     string
	ContentPassword string
}

// New creates a new server instance. The database and content system are
// optional; without them only the inline analyze/optimize endpoints work.
func New(cfg Config) (*Server, error) {
	ruleTables, err := rules.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule tables: %w", err)
	}

	s := &Server{
		engine:   engine.New(ruleTables),
		validate: validator.New(),
		log:      slog.Default(),
	}

	if cfg.DatabaseURL != "" {
		s.store, err = store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	if cfg.ContentBaseURL != "" {
		s.content = wordpress.New(cfg.ContentBaseURL, cfg.ContentPostType,
			cfg.ContentUser, cfg.ContentPassword)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	mux.HandleFunc("POST /postings/{id}/optimize", s.handleOptimizePosting)
	mux.HandleFunc("GET /postings/{id}/optimizations", s.handleListOptimizations)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withRequestID attaches a request ID to every request context.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", logger.GetRequestID(r.Context()),
			"duration", time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
