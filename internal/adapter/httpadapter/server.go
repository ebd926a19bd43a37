package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/domain"
	"github.com/couchcryptid/launch-score-service/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LaunchAPI is the query surface served over HTTP.
type LaunchAPI interface {
	sharedobs.ReadinessChecker
	Weather(ctx context.Context, location string, useSample bool) (domain.WeatherReport, error)
	Score(ctx context.Context, location string, useSample bool) (domain.LaunchScore, error)
	Schedule(filter domain.LaunchFilter) []domain.LaunchEvent
	Sites() []domain.Site
}

// Server exposes the launch API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	api        LaunchAPI
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with the API routes and /healthz, /readyz,
// and /metrics. Every API response is wrapped in CORS headers for allowedOrigins.
func NewServer(addr string, api LaunchAPI, allowedOrigins []string, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      withRequestLogging(logger, withCORS(allowedOrigins, mux)),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		api:     api,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /weather/{location}", s.handleWeather)
	mux.HandleFunc("GET /launch_schedule", s.handleSchedule)
	mux.HandleFunc("GET /launch_score/{location}", s.handleScore)
	mux.HandleFunc("GET /sites", s.handleSites)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(api))
	mux.Handle("GET /metrics", promhttp.Handler())

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
