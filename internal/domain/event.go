package domain

import "time"

// WeatherReport is the current observation at a site plus its short-range
// forecast. Observation fields are flattened into the JSON object.
type WeatherReport struct {
	Location string `json:"location"`
	WeatherObservation
	Forecast []ForecastEntry `json:"forecast"`
	IsSample bool            `json:"is_sample"`
}

// LaunchScore is the scored result for a site. Breakdown fields are
// flattened into the JSON object.
type LaunchScore struct {
	Location string `json:"location"`
	ScoreBreakdown
	IsSample bool `json:"is_sample"`
}

// ScoreEvent is the record published to the event sink for each computed score.
type ScoreEvent struct {
	Location   string         `json:"location"`
	IsSample   bool           `json:"is_sample"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	ObservedAt time.Time      `json:"observed_at,omitzero"`
	ComputedAt time.Time      `json:"computed_at"`
}
