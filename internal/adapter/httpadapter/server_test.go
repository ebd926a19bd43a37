package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/adapter/httpadapter"
	"github.com/couchcryptid/launch-score-service/internal/adapter/sample"
	"github.com/couchcryptid/launch-score-service/internal/catalog"
	"github.com/couchcryptid/launch-score-service/internal/domain"
	"github.com/couchcryptid/launch-score-service/internal/observability"
	"github.com/couchcryptid/launch-score-service/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type liveSource struct {
	obs domain.WeatherObservation
	err error
}

func (s *liveSource) Current(_ context.Context, _ domain.Coordinates) (domain.WeatherObservation, error) {
	return s.obs, s.err
}

func (s *liveSource) Forecast(_ context.Context, _ domain.Coordinates, _ int) ([]domain.ForecastEntry, error) {
	return []domain.ForecastEntry{}, s.err
}

type notReady struct {
	httpadapter.LaunchAPI
}

func (notReady) CheckReadiness(_ context.Context) error { return errors.New("not ready yet") }

var fixedTime = time.Date(2024, time.December, 15, 14, 0, 0, 0, time.UTC)

func newService(live domain.WeatherSource) *service.Service {
	sites, launches := catalog.Directories()
	clock := clockwork.NewFakeClockAt(fixedTime)
	return service.New(
		sites,
		launches,
		service.Sources{Live: live, Sample: sample.NewSource(clock)},
		nil,
		clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewMetricsForTesting(),
	)
}

func newTestServer(api httpadapter.LaunchAPI, origins ...string) (*httpadapter.Server, *observability.Metrics) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httpadapter.NewServer(":0", api, origins, logger, metrics), metrics
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHome(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rocket Launch Scheduling")
}

func TestUnknownRouteReturns404(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLaunchScore_Sample(t *testing.T) {
	srv, metrics := newTestServer(newService(&liveSource{err: errors.New("must not be called")}))

	rec := get(t, srv, "/launch_score/Kennedy%20Space%20Center?use_sample=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, catalog.KennedySpaceCenter, body["location"])
	assert.Equal(t, 93.0, body["score"])
	assert.Equal(t, true, body["is_sample"])
	assert.Contains(t, body, "weather_score")
	assert.Contains(t, body, "visibility_score")
	assert.Contains(t, body, "wind_score")
	assert.Contains(t, body, "conditions")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("launch_score", "ok")))
}

func TestLaunchScore_Live(t *testing.T) {
	live := &liveSource{obs: domain.WeatherObservation{
		Temperature:   22,
		Humidity:      65,
		WindSpeed:     5,
		Visibility:    10000,
		CloudCoverage: 20,
	}}
	srv, _ := newTestServer(newService(live))

	rec := get(t, srv, "/launch_score/Cape%20Canaveral")

	body := decode(t, rec)
	assert.Equal(t, 97.5, body["weather_score"])
	assert.Equal(t, 99.0, body["score"])
	assert.Equal(t, false, body["is_sample"])
}

func TestLaunchScore_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		live     *liveSource
		wantCode string
	}{
		{
			name:     "unknown location",
			path:     "/launch_score/Baikonur",
			live:     &liveSource{},
			wantCode: "UNKNOWN_LOCATION",
		},
		{
			name:     "unknown location in sample mode",
			path:     "/launch_score/Baikonur?use_sample=true",
			live:     &liveSource{},
			wantCode: "UNKNOWN_LOCATION",
		},
		{
			name:     "rate limited",
			path:     "/launch_score/Vandenberg",
			live:     &liveSource{err: domain.RateLimitedError()},
			wantCode: "RATE_LIMIT_REACHED",
		},
		{
			name:     "upstream error",
			path:     "/launch_score/Vandenberg",
			live:     &liveSource{err: domain.UpstreamError(http.StatusUnauthorized, "Invalid API key")},
			wantCode: "UPSTREAM_ERROR",
		},
		{
			name:     "network error",
			path:     "/launch_score/Vandenberg",
			live:     &liveSource{err: domain.NetworkError(errors.New("connection refused"))},
			wantCode: "NETWORK_ERROR",
		},
		{
			name:     "unclassified error",
			path:     "/launch_score/Vandenberg",
			live:     &liveSource{err: errors.New("boom")},
			wantCode: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, metrics := newTestServer(newService(tt.live))

			rec := get(t, srv, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code, "errors are reported in the body")
			body := decode(t, rec)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.NotEmpty(t, body["message"])
			assert.NotContains(t, body, "score")
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("launch_score", "error")))
		})
	}
}

func TestRateLimitMessageSuggestsSample(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{err: domain.RateLimitedError()}))

	body := decode(t, get(t, srv, "/weather/Vandenberg"))

	assert.Equal(t, "RATE_LIMIT_REACHED", body["error"])
	assert.Contains(t, body["message"], "use_sample=true")
}

func TestWeather_Sample(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/weather/Vandenberg?use_sample=1")

	body := decode(t, rec)
	assert.Equal(t, catalog.Vandenberg, body["location"])
	assert.Equal(t, 22.0, body["temperature"])
	assert.Equal(t, 65.0, body["humidity"])
	assert.Equal(t, 5.2, body["wind_speed"])
	assert.Equal(t, 10000.0, body["visibility"])
	assert.Equal(t, "clear sky", body["description"])
	assert.Equal(t, true, body["is_sample"])

	forecast, ok := body["forecast"].([]any)
	require.True(t, ok)
	assert.Len(t, forecast, domain.ForecastSteps)
}

func TestWeather_InvalidUseSampleIsFalse(t *testing.T) {
	live := &liveSource{obs: domain.WeatherObservation{Temperature: 30, Visibility: 8000}}
	srv, _ := newTestServer(newService(live))

	body := decode(t, get(t, srv, "/weather/Vandenberg?use_sample=maybe"))

	assert.Equal(t, false, body["is_sample"])
	assert.Equal(t, 30.0, body["temperature"])
}

func TestLaunchSchedule(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	tests := []struct {
		name    string
		query   string
		wantIDs []float64
	}{
		{name: "no filters", query: "", wantIDs: []float64{1, 2, 3, 4}},
		{name: "by site", query: "?site=Kennedy%20Space%20Center", wantIDs: []float64{1, 4}},
		{name: "by status", query: "?status=Delayed", wantIDs: []float64{4}},
		{name: "date window", query: "?start_date=2024-12-16&end_date=2025-01-10", wantIDs: []float64{2, 3}},
		{name: "no match", query: "?site=Baikonur", wantIDs: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, "/launch_schedule"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var events []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
			require.NotNil(t, events, "empty result is [] not null")

			ids := make([]float64, 0, len(events))
			for _, e := range events {
				ids = append(ids, e["id"].(float64))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSites(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/sites")

	var sites []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sites))
	assert.Len(t, sites, len(catalog.Sites()))
}

func TestCORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		srv, _ := newTestServer(newService(&liveSource{}))
		rec := get(t, srv, "/sites")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list echoes matching origin", func(t *testing.T) {
		srv, _ := newTestServer(newService(&liveSource{}), "http://localhost:3000")

		req := httptest.NewRequest(http.MethodGet, "/sites", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list rejects other origin", func(t *testing.T) {
		srv, _ := newTestServer(newService(&liveSource{}), "http://localhost:3000")

		req := httptest.NewRequest(http.MethodGet, "/sites", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		srv, _ := newTestServer(newService(&liveSource{}))

		req := httptest.NewRequest(http.MethodOptions, "/launch_score/Vandenberg", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv, _ := newTestServer(notReady{LaunchAPI: newService(&liveSource{})})

	rec := get(t, srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(newService(&liveSource{}))

	rec := get(t, srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
