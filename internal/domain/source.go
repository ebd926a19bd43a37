package domain

import "context"

// WeatherSource supplies observations for a coordinate pair. Implementations
// report failures as *SourceError.
type WeatherSource interface {
	// Current returns the latest observation.
	Current(ctx context.Context, at Coordinates) (WeatherObservation, error)

	// Forecast returns up to steps forecast entries in chronological order.
	Forecast(ctx context.Context, at Coordinates, steps int) ([]ForecastEntry, error)
}
