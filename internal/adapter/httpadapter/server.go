package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/radar-console/internal/console"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Console is the part of the radar console the HTTP API drives.
type Console interface {
	sharedobs.ReadinessChecker
	Snapshot() console.Snapshot
	Target(id string) (console.TargetDetail, error)
	SetPRF(hz int) int
	SetRotationRPM(rpm float64) float64
	Start()
	Stop()
	Regenerate(count int) int
}

// Server exposes the console API alongside health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	console    Console
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /api/v1 console routes.
func NewServer(addr string, c Console, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		console: c,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(c))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/v1/scan", s.handleScan)
	mux.HandleFunc("PUT /api/v1/scan/prf", s.handleSetPRF)
	mux.HandleFunc("PUT /api/v1/scan/rpm", s.handleSetRPM)
	mux.HandleFunc("POST /api/v1/scan/start", s.handleStart)
	mux.HandleFunc("POST /api/v1/scan/stop", s.handleStop)
	mux.HandleFunc("POST /api/v1/targets/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/v1/targets/{id}", s.handleTarget)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
