// Package domain models launch-site weather and the launch suitability score.
//
// # Scoring
//
// A [WeatherObservation] is reduced to three sub-scores, each in [0,100]:
//
//	Weather:    starts at 100, minus a temperature, humidity, and condition-text penalty
//	Visibility: step function over kilometers (>=10 → 100, >=5 → 80, >=3 → 50, else km*10)
//	Wind:       step function over m/s (<=5 → 100, <=10 → 80, <=15 → 50, <=20 → 20, else 0)
//
// The composite score weights them 0.4 / 0.3 / 0.3 and rounds to one decimal.
// All scoring functions are pure: the same observation always produces the
// same [ScoreBreakdown].
//
// Condition-text penalties are evaluated in priority order and only the first
// matching group applies:
//
//	thunderstorm, storm → 100
//	rain, drizzle       → 50
//	mist, fog           → 30
//	cloud               → 10
//
// # Legacy Scoring
//
// An earlier revision combined a flat-penalty weather score
// ([LegacyWeatherScore]) with a constant regulatory placeholder (0.6 / 0.4).
// It survives as [LegacyCompositeScore] for comparison and is not served by
// the API.
//
// # Directories
//
// [SiteDirectory] maps launch site names to coordinates and [LaunchDirectory]
// holds the launch schedule. Both are immutable once constructed.
package domain
