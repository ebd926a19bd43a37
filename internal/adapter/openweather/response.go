package openweather

import (
	"math"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/domain"
)

// OpenWeatherMap API response types. Optional fields are pointers so a
// missing value can be told apart from zero.

type currentResponse struct {
	Dt         int64       `json:"dt"`
	Weather    []condition `json:"weather"`
	Main       mainBlock   `json:"main"`
	Visibility *float64    `json:"visibility"`
	Wind       windBlock   `json:"wind"`
	Clouds     cloudsBlock `json:"clouds"`
	Rain       *volume     `json:"rain"`
	Snow       *volume     `json:"snow"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt      int64       `json:"dt"`
	Main    mainBlock   `json:"main"`
	Weather []condition `json:"weather"`
	Wind    windBlock   `json:"wind"`
	Rain    *volume     `json:"rain"`
	Snow    *volume     `json:"snow"`
}

type condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type mainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type windBlock struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type cloudsBlock struct {
	All int `json:"all"`
}

// volume is precipitation over the last hour (current) or three hours (forecast), in mm.
type volume struct {
	OneHour   float64 `json:"1h"`
	ThreeHour float64 `json:"3h"`
}

func (r currentResponse) toObservation() domain.WeatherObservation {
	visibility := domain.DefaultVisibility
	if r.Visibility != nil {
		visibility = *r.Visibility
	}
	var direction int
	if r.Wind.Deg != nil {
		direction = normalizeDegrees(int(math.Round(*r.Wind.Deg)))
	}

	obs := domain.WeatherObservation{
		Temperature:   r.Main.Temp,
		Humidity:      r.Main.Humidity,
		WindSpeed:     r.Wind.Speed,
		WindDirection: direction,
		Visibility:    visibility,
		CloudCoverage: r.Clouds.All,
		Description:   firstDescription(r.Weather),
		Precipitation: precipitation(r.Rain) + precipitation(r.Snow),
	}
	if r.Dt > 0 {
		obs.ObservedAt = time.Unix(r.Dt, 0).UTC()
	}
	return obs
}

func (f forecastItem) toEntry() domain.ForecastEntry {
	return domain.ForecastEntry{
		Timestamp:     time.Unix(f.Dt, 0).UTC(),
		Temperature:   f.Main.Temp,
		WindSpeed:     f.Wind.Speed,
		Description:   firstDescription(f.Weather),
		Precipitation: precipitation(f.Rain) + precipitation(f.Snow),
	}
}

func firstDescription(conditions []condition) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Description
}

func precipitation(v *volume) float64 {
	if v == nil {
		return 0
	}
	if v.OneHour > 0 {
		return v.OneHour
	}
	return v.ThreeHour
}

// normalizeDegrees maps any whole-degree bearing into [0,360).
func normalizeDegrees(d int) int {
	return ((d % 360) + 360) % 360
}
