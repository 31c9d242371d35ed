package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atreus-labs/wardenbot/internal/database"
	"github.com/atreus-labs/wardenbot/internal/logger"
)

// Server exposes the operational HTTP surface: liveness, readiness, and
// Prometheus metrics. The bot itself speaks only the Discord gateway.
type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// New creates a new Server instance
func New(port int, dbPool database.Pool) *Server {
	s := &Server{dbPool: dbPool}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start runs the HTTP server until Shutdown
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", ErrContextServerFailed, err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadyzPingTimeout)
	defer cancel()

	if err := s.dbPool.Ping(ctx); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgReadinessCheckFailed, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  StatusUnavailable,
			Message: MsgDatabaseUnreachable,
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
