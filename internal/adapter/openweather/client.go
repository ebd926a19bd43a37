package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/domain"
	"github.com/couchcryptid/launch-score-service/internal/observability"
)

// Client implements domain.WeatherSource using the OpenWeatherMap 2.5 API.
// It never retries; every failure is returned as a *domain.SourceError.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Current fetches the latest observation for the coordinates.
func (c *Client) Current(ctx context.Context, at domain.Coordinates) (domain.WeatherObservation, error) {
	var resp currentResponse
	if err := c.get(ctx, "weather", at, nil, &resp); err != nil {
		return domain.WeatherObservation{}, err
	}
	return resp.toObservation(), nil
}

// Forecast fetches up to steps 3-hour forecast entries for the coordinates.
func (c *Client) Forecast(ctx context.Context, at domain.Coordinates, steps int) ([]domain.ForecastEntry, error) {
	extra := url.Values{"cnt": {strconv.Itoa(steps)}}

	var resp forecastResponse
	if err := c.get(ctx, "forecast", at, extra, &resp); err != nil {
		return nil, err
	}

	entries := make([]domain.ForecastEntry, 0, len(resp.List))
	for _, item := range resp.List {
		if len(entries) == steps {
			break
		}
		entries = append(entries, item.toEntry())
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, endpoint string, at domain.Coordinates, extra url.Values, out any) error {
	params := url.Values{
		"lat":   {strconv.FormatFloat(at.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(at.Lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	for k, v := range extra {
		params[k] = v
	}
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.record(endpoint, "network_error")
		return domain.NetworkError(fmt.Errorf("%s request: %w", endpoint, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.record(endpoint, "rate_limited")
		c.logger.Warn("openweathermap rate limit reached", "endpoint", endpoint)
		return domain.RateLimitedError()
	case resp.StatusCode != http.StatusOK:
		c.record(endpoint, "upstream_error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.UpstreamError(resp.StatusCode, upstreamMessage(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.record(endpoint, "upstream_error")
		se := domain.UpstreamError(resp.StatusCode, "undecodable response body")
		se.Err = fmt.Errorf("decode %s response: %w", endpoint, err)
		return se
	}

	c.record(endpoint, "success")
	return nil
}

func (c *Client) record(endpoint, outcome string) {
	c.metrics.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// upstreamMessage extracts OpenWeatherMap's "message" field, falling back to
// the raw body.
func upstreamMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	if len(body) == 0 {
		return "empty response"
	}
	return string(body)
}
