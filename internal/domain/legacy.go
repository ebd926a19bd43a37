package domain

import "strings"

// RegulatoryPlaceholder is the constant regulatory score used by the
// two-factor scheme. No regulatory data source ever backed it.
const RegulatoryPlaceholder = 90.0

const (
	legacyTempPenalty      = 20.0
	legacyWindLimit        = 10.0
	legacyWindPenalty      = 30.0
	legacyHumidityLimit    = 80
	legacyHumidityPenalty  = 20.0
	legacyConditionPenalty = 40.0
)

// LegacyWeatherScore is the flat-penalty weather score of the two-factor
// scheme: 100 minus 20 for temperature outside [15,25] °C, 30 for wind above
// 10 m/s, 20 for humidity above 80 %, and 40 when the description mentions
// storm or rain.
//
// Deprecated: use [ScoreWeather], [ScoreVisibility], and [ScoreWind].
func LegacyWeatherScore(obs WeatherObservation) float64 {
	score := maxScore
	if obs.Temperature < idealTempMin || obs.Temperature > idealTempMax {
		score -= legacyTempPenalty
	}
	if obs.WindSpeed > legacyWindLimit {
		score -= legacyWindPenalty
	}
	if obs.Humidity > legacyHumidityLimit {
		score -= legacyHumidityPenalty
	}
	desc := strings.ToLower(obs.Description)
	if strings.Contains(desc, "storm") || strings.Contains(desc, "rain") {
		score -= legacyConditionPenalty
	}
	return clamp(score)
}

// LegacyCompositeScore combines [LegacyWeatherScore] with the regulatory
// placeholder using the original 0.6 / 0.4 weights.
//
// Deprecated: use [CompositeScore], which also weighs visibility and wind.
func LegacyCompositeScore(obs WeatherObservation) float64 {
	return round1(0.6*LegacyWeatherScore(obs) + 0.4*RegulatoryPlaceholder)
}
