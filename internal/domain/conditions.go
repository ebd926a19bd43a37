package domain

// ConditionStatus labels a single condition dimension.
type ConditionStatus string

const (
	StatusOptimal    ConditionStatus = "optimal"
	StatusSuboptimal ConditionStatus = "suboptimal"
)

// Condition annotates one observed dimension with its unit and status.
type Condition struct {
	Value  float64         `json:"value"`
	Unit   string          `json:"unit"`
	Status ConditionStatus `json:"status"`
}

// Conditions holds the per-dimension annotations reported with a score.
type Conditions struct {
	Temperature Condition `json:"temperature"`
	Wind        Condition `json:"wind"`
	Visibility  Condition `json:"visibility"`
	Clouds      Condition `json:"clouds"`
}

const (
	optimalWindMax       = 10.0
	optimalVisibilityMin = 10000.0 // meters
	optimalCloudsMax     = 30
)

// ConditionDetails reports the raw value, unit, and optimal/suboptimal status
// for temperature, wind, visibility, and cloud coverage.
func ConditionDetails(obs WeatherObservation) Conditions {
	return Conditions{
		Temperature: Condition{
			Value:  obs.Temperature,
			Unit:   "°C",
			Status: status(obs.Temperature >= idealTempMin && obs.Temperature <= idealTempMax),
		},
		Wind: Condition{
			Value:  obs.WindSpeed,
			Unit:   "m/s",
			Status: status(obs.WindSpeed <= optimalWindMax),
		},
		Visibility: Condition{
			Value:  obs.Visibility,
			Unit:   "m",
			Status: status(obs.Visibility >= optimalVisibilityMin),
		},
		Clouds: Condition{
			Value:  float64(obs.CloudCoverage),
			Unit:   "%",
			Status: status(obs.CloudCoverage <= optimalCloudsMax),
		},
	}
}

func status(optimal bool) ConditionStatus {
	if optimal {
		return StatusOptimal
	}
	return StatusSuboptimal
}
