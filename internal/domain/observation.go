package domain

import "time"

// WeatherObservation is a single point-in-time reading at a launch site.
// Optional upstream fields are defaulted by the source adapter before the
// observation reaches the scoring functions.
type WeatherObservation struct {
	Temperature   float64   `json:"temperature"`    // °C
	Humidity      int       `json:"humidity"`       // percent
	WindSpeed     float64   `json:"wind_speed"`     // m/s
	WindDirection int       `json:"wind_direction"` // degrees
	Visibility    float64   `json:"visibility"`     // meters
	CloudCoverage int       `json:"cloud_coverage"` // percent
	Description   string    `json:"description"`
	Precipitation float64   `json:"precipitation"` // mm, not scored
	ObservedAt    time.Time `json:"observed_at,omitzero"`
}

// DefaultVisibility is assumed when a reading omits visibility; it is the
// largest value OpenWeatherMap reports, in meters.
const DefaultVisibility = 10000.0

// VisibilityKM returns the visibility converted to kilometers.
func (o WeatherObservation) VisibilityKM() float64 {
	return o.Visibility / 1000
}

// ForecastEntry is one step of a short-range forecast.
type ForecastEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	WindSpeed     float64   `json:"wind_speed"`
	Description   string    `json:"description"`
	Precipitation float64   `json:"precipitation"`
}

// ForecastSteps is the number of forecast entries returned with a weather report.
const ForecastSteps = 8

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
