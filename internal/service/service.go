// Package service resolves launch sites, fetches weather from the selected
// source, and scores it.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/domain"
	"github.com/couchcryptid/launch-score-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

const publishTimeout = 5 * time.Second

// ScorePublisher receives every computed score.
type ScorePublisher interface {
	PublishScore(ctx context.Context, event domain.ScoreEvent) error
}

// Sources selects between live and sample weather data.
type Sources struct {
	Live   domain.WeatherSource
	Sample domain.WeatherSource
}

// Service answers weather, score, schedule, and site queries. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	sites     *domain.SiteDirectory
	launches  *domain.LaunchDirectory
	sources   Sources
	publisher ScorePublisher
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. Pass a nil publisher to skip score events.
func New(sites *domain.SiteDirectory, launches *domain.LaunchDirectory, sources Sources, publisher ScorePublisher, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		sites:     sites,
		launches:  launches,
		sources:   sources,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// Weather returns the current observation and forecast for a named site.
// The two upstream calls are made sequentially; either failing fails the request.
func (s *Service) Weather(ctx context.Context, location string, useSample bool) (domain.WeatherReport, error) {
	site, src, err := s.resolve(location, useSample)
	if err != nil {
		return domain.WeatherReport{}, err
	}

	current, err := src.Current(ctx, site.Coordinates())
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("current weather for %s: %w", location, err)
	}
	forecast, err := src.Forecast(ctx, site.Coordinates(), domain.ForecastSteps)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("forecast for %s: %w", location, err)
	}

	return domain.WeatherReport{
		Location:           site.Name,
		WeatherObservation: current,
		Forecast:           forecast,
		IsSample:           useSample,
	}, nil
}

// Score fetches the current observation for a named site and scores it.
func (s *Service) Score(ctx context.Context, location string, useSample bool) (domain.LaunchScore, error) {
	site, src, err := s.resolve(location, useSample)
	if err != nil {
		return domain.LaunchScore{}, err
	}

	obs, err := src.Current(ctx, site.Coordinates())
	if err != nil {
		return domain.LaunchScore{}, fmt.Errorf("current weather for %s: %w", location, err)
	}

	breakdown := domain.Score(obs)
	s.metrics.CompositeScore.Observe(breakdown.CompositeScore)
	s.publish(ctx, domain.ScoreEvent{
		Location:   site.Name,
		IsSample:   useSample,
		Breakdown:  breakdown,
		ObservedAt: obs.ObservedAt,
		ComputedAt: s.clock.Now().UTC(),
	})

	return domain.LaunchScore{
		Location:       site.Name,
		ScoreBreakdown: breakdown,
		IsSample:       useSample,
	}, nil
}

// Schedule returns the launches matching the filter.
func (s *Service) Schedule(filter domain.LaunchFilter) []domain.LaunchEvent {
	return s.launches.List(filter)
}

// Sites returns every known launch site.
func (s *Service) Sites() []domain.Site {
	return s.sites.All()
}

// CheckReadiness reports an error when there is nothing to serve.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.sites.Len() == 0 {
		return errors.New("site directory is empty")
	}
	return nil
}

func (s *Service) resolve(location string, useSample bool) (domain.Site, domain.WeatherSource, error) {
	site, ok := s.sites.Lookup(location)
	if !ok {
		return domain.Site{}, nil, domain.UnknownLocationError(location)
	}
	if useSample {
		return site, s.sources.Sample, nil
	}
	return site, s.sources.Live, nil
}

// publish sends the event without failing the request. It outlives a
// cancelled request context but is bounded by publishTimeout.
func (s *Service) publish(ctx context.Context, event domain.ScoreEvent) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishScore(ctx, event); err != nil {
		s.metrics.ScorePublishErrors.Inc()
		s.logger.Warn("publish score event failed", "location", event.Location, "error", err)
		return
	}
	s.metrics.ScoreEventsPublished.Inc()
}
