package domain

import (
	"math"
	"strings"
)

// Composite weights. They sum to 1.0, so a composite of in-range sub-scores
// stays in range.
const (
	WeightWeather    = 0.4
	WeightVisibility = 0.3
	WeightWind       = 0.3
)

const (
	maxScore = 100.0

	idealTempMin    = 15.0
	idealTempMax    = 25.0
	idealTempCenter = 20.0
	maxTempPenalty  = 30.0

	humidityThreshold  = 60
	maxHumidityPenalty = 20.0
)

// conditionPenalty pairs a set of description keywords with the points
// subtracted when any of them appears.
type conditionPenalty struct {
	keywords []string
	penalty  float64
}

// conditionPenalties is evaluated in order; the first matching group wins.
var conditionPenalties = []conditionPenalty{
	{keywords: []string{"thunderstorm", "storm"}, penalty: 100},
	{keywords: []string{"rain", "drizzle"}, penalty: 50},
	{keywords: []string{"mist", "fog"}, penalty: 30},
	{keywords: []string{"cloud"}, penalty: 10},
}

// ScoreBreakdown is the full scoring result for one observation.
type ScoreBreakdown struct {
	WeatherScore    float64    `json:"weather_score"`
	VisibilityScore float64    `json:"visibility_score"`
	WindScore       float64    `json:"wind_score"`
	CompositeScore  float64    `json:"score"`
	Conditions      Conditions `json:"conditions"`
}

// Score computes every sub-score, the composite, and the condition details.
func Score(obs WeatherObservation) ScoreBreakdown {
	weather := ScoreWeather(obs)
	visibility := ScoreVisibility(obs)
	wind := ScoreWind(obs)
	return ScoreBreakdown{
		WeatherScore:    weather,
		VisibilityScore: visibility,
		WindScore:       wind,
		CompositeScore:  CompositeScore(weather, visibility, wind),
		Conditions:      ConditionDetails(obs),
	}
}

// ScoreWeather starts at 100 and subtracts temperature, humidity, and
// condition-text penalties.
func ScoreWeather(obs WeatherObservation) float64 {
	score := maxScore
	score -= temperaturePenalty(obs.Temperature)
	score -= humidityPenalty(obs.Humidity)
	score -= descriptionPenalty(obs.Description)
	return clamp(score)
}

// ScoreVisibility maps visibility in kilometers onto a step function.
func ScoreVisibility(obs WeatherObservation) float64 {
	km := obs.VisibilityKM()
	switch {
	case km >= 10:
		return 100
	case km >= 5:
		return 80
	case km >= 3:
		return 50
	default:
		return clamp(km * 10)
	}
}

// ScoreWind maps wind speed in m/s onto a step function. Each boundary
// belongs to the better step.
func ScoreWind(obs WeatherObservation) float64 {
	speed := obs.WindSpeed
	switch {
	case speed <= 5:
		return 100
	case speed <= 10:
		return 80
	case speed <= 15:
		return 50
	case speed <= 20:
		return 20
	default:
		return 0
	}
}

// CompositeScore combines the sub-scores with the canonical weights and
// rounds to one decimal place.
func CompositeScore(weather, visibility, wind float64) float64 {
	return round1(WeightWeather*weather + WeightVisibility*visibility + WeightWind*wind)
}

func temperaturePenalty(temp float64) float64 {
	if temp >= idealTempMin && temp <= idealTempMax {
		return 0
	}
	return math.Min(maxTempPenalty, math.Abs(temp-idealTempCenter)*2)
}

func humidityPenalty(humidity int) float64 {
	if humidity <= humidityThreshold {
		return 0
	}
	return math.Min(maxHumidityPenalty, float64(humidity-humidityThreshold)*0.5)
}

func descriptionPenalty(description string) float64 {
	text := strings.ToLower(description)
	for _, group := range conditionPenalties {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.penalty
			}
		}
	}
	return 0
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(maxScore, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
