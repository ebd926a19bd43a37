// Package sample provides a network-free weather source for demos and for
// riding out provider rate limits.
package sample

import (
	"context"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

const forecastInterval = 3 * time.Hour

// observation is the fixed reading returned for every location.
var observation = domain.WeatherObservation{
	Temperature:   22,
	Humidity:      65,
	WindSpeed:     5.2,
	WindDirection: 180,
	Visibility:    10000,
	CloudCoverage: 20,
	Description:   "clear sky",
	Precipitation: 0,
}

type forecastStep struct {
	temperature   float64
	windSpeed     float64
	description   string
	precipitation float64
}

var forecastSteps = []forecastStep{
	{22.5, 5.0, "clear sky", 0},
	{23.8, 5.6, "few clouds", 0},
	{24.6, 6.3, "scattered clouds", 0},
	{23.1, 7.4, "broken clouds", 0},
	{21.4, 8.9, "light rain", 0.6},
	{20.2, 7.7, "light rain", 1.1},
	{19.6, 6.1, "overcast clouds", 0},
	{19.9, 5.4, "clear sky", 0},
}

// Source implements domain.WeatherSource with fixed data. Forecast timestamps
// start at the next whole hour of the clock and advance in 3-hour steps.
type Source struct {
	clock clockwork.Clock
}

// NewSource creates a sample source. A nil clock uses real time.
func NewSource(clock clockwork.Clock) *Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Source{clock: clock}
}

// Current returns the fixed sample observation regardless of location.
func (s *Source) Current(_ context.Context, _ domain.Coordinates) (domain.WeatherObservation, error) {
	obs := observation
	obs.ObservedAt = s.clock.Now().UTC().Truncate(time.Hour)
	return obs, nil
}

// Forecast returns up to steps fixed forecast entries.
func (s *Source) Forecast(_ context.Context, _ domain.Coordinates, steps int) ([]domain.ForecastEntry, error) {
	steps = max(0, min(steps, len(forecastSteps)))
	start := s.clock.Now().UTC().Truncate(time.Hour).Add(time.Hour)

	entries := make([]domain.ForecastEntry, 0, steps)
	for i := 0; i < steps; i++ {
		step := forecastSteps[i]
		entries = append(entries, domain.ForecastEntry{
			Timestamp:     start.Add(time.Duration(i) * forecastInterval),
			Temperature:   step.temperature,
			WindSpeed:     step.windSpeed,
			Description:   step.description,
			Precipitation: step.precipitation,
		})
	}
	return entries, nil
}
