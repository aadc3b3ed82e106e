// README: Weather domain types for per-coordinate hourly forecasts.
package weather

import "khusela/internal/types"

// Hourly holds the parallel hourly series returned by the forecast API.
// All slices have equal length; Time[i] labels the i-th entry of each.
type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	Rain          []float64 `json:"rain"`
	Showers       []float64 `json:"showers"`
	WindGusts10M  []float64 `json:"wind_gusts_10m"`
	WeatherCode   []int     `json:"weather_code"`
}

// Forecast is the hourly forecast for a single point.
type Forecast struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hourly    Hourly  `json:"hourly"`
}

// Observation pairs a sampled route coordinate with its forecast. When the
// provider call for this point failed, IsFallback is true and Forecast is
// zero-valued; downstream scoring treats such points as no-signal.
type Observation struct {
	Coordinate types.Coordinate `json:"coordinate"`
	Forecast   Forecast         `json:"forecast"`
	IsFallback bool             `json:"isFallback"`
}
