// README: Deterministic risk scoring: weather, crime, accident, and theft
// sub-scores plus the weighted composite. Same inputs always yield the
// same scores.
package risk

import (
	"math"
	"strings"

	"khusela/internal/geo"
	"khusela/internal/types"
	"khusela/internal/weather"
)

// hotspot is a known high-crime area with its risk weight.
type hotspot struct {
	Name      string
	Location  types.Coordinate
	RiskLevel float64
}

// saHotspots lists South African crime hotspots used for proximity scoring.
var saHotspots = []hotspot{
	{"Johannesburg CBD", types.Coordinate{Lat: -26.2041, Lng: 28.0473}, 85},
	{"Hillbrow", types.Coordinate{Lat: -26.1849, Lng: 28.0488}, 90},
	{"Alexandra", types.Coordinate{Lat: -26.1009, Lng: 28.0963}, 80},
	{"Soweto", types.Coordinate{Lat: -26.2678, Lng: 27.8546}, 70},
	{"Cape Flats", types.Coordinate{Lat: -34.0299, Lng: 18.6248}, 85},
	{"Mitchells Plain", types.Coordinate{Lat: -34.0364, Lng: 18.6248}, 75},
	{"Khayelitsha", types.Coordinate{Lat: -34.0500, Lng: 18.6820}, 80},
	{"Durban Central", types.Coordinate{Lat: -29.8587, Lng: 31.0218}, 65},
	{"Umlazi", types.Coordinate{Lat: -29.9729, Lng: 30.8827}, 70},
	{"Phoenix", types.Coordinate{Lat: -29.7008, Lng: 31.0169}, 75},
}

// vehicleTheftRisk maps normalised vehicle models to theft scores. Bakkies
// and popular sedans top the national theft statistics.
var vehicleTheftRisk = map[string]float64{
	"toyota_hilux":   90,
	"vw_polo":        80,
	"bmw_x5":         85,
	"toyota_corolla": 60,
	"nissan_np200":   70,
	"ford_ranger":    85,
	"mercedes_benz":  75,
	"audi":           70,
}

const defaultTheftRisk = 50

// hotspotRadiusKm bounds the distance at which a hotspot still influences
// a route point.
const hotspotRadiusKm = 5.0

// Input carries everything the scorer needs for one route.
type Input struct {
	Coordinates  []types.Coordinate
	Observations []weather.Observation
	DistanceKm   float64
	Vehicle      string
}

// Scorer computes deterministic risk factors for a route.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

// Score computes all four sub-scores and the weighted composite.
// Weights: weather 0.3, crime 0.3, accident 0.2, theft 0.2.
func (s *Scorer) Score(in Input) Factors {
	f := Factors{
		Weather:  weatherScore(in.Observations),
		Crime:    crimeScore(in.Coordinates),
		Theft:    theftScore(in.Vehicle),
		Accident: 0,
	}
	f.Accident = accidentScore(in.DistanceKm, f.Weather)

	composite := f.Weather*0.3 + f.Crime*0.3 + f.Accident*0.2 + f.Theft*0.2
	f.Composite = clamp(composite)
	return f
}

// weatherScore averages per-point segment risk across every observation.
// Fallback observations carry no signal and contribute zero, so a route with
// patchy forecast coverage scores lower rather than failing.
func weatherScore(observations []weather.Observation) float64 {
	if len(observations) == 0 {
		return 0
	}

	var total float64
	for _, obs := range observations {
		if obs.IsFallback {
			continue
		}
		total += segmentRisk(obs.Forecast.Hourly)
	}
	return clamp(total / float64(len(observations)))
}

// WMO weather code groups used for segment scoring.
func isThunderstormCode(code int) bool { return code >= 95 }

func isRainCode(code int) bool {
	return (code >= 61 && code <= 67) || (code >= 80 && code <= 82)
}

func isSevereCode(code int) bool {
	switch code {
	case 65, 67, 75, 82, 95, 96, 99:
		return true
	}
	return false
}

// segmentRisk scores one point's hourly series. Thunderstorms dominate,
// then rainfall volume, severe conditions, and gusts.
func segmentRisk(h weather.Hourly) float64 {
	var score float64

	maxCode := 0
	for _, code := range h.WeatherCode {
		if code > maxCode {
			maxCode = code
		}
	}

	switch {
	case isThunderstormCode(maxCode):
		score += 40
	case isRainCode(maxCode):
		score += 20
	}

	var maxRain float64
	for i := range h.Rain {
		total := h.Rain[i]
		if i < len(h.Showers) {
			total += h.Showers[i]
		}
		if total > maxRain {
			maxRain = total
		}
	}
	switch {
	case maxRain > 5:
		score += 25
	case maxRain > 1:
		score += 10
	}

	if isSevereCode(maxCode) {
		score += 30
	}

	var maxGust float64
	for _, g := range h.WindGusts10M {
		if g > maxGust {
			maxGust = g
		}
	}
	if maxGust > 60 {
		score += 15
	}

	return clamp(score)
}

// crimeScore accumulates hotspot proximity over every route point. A point
// sitting on a hotspot contributes riskLevel/10; influence decays linearly
// to zero at hotspotRadiusKm.
func crimeScore(coords []types.Coordinate) float64 {
	var score float64
	for _, coord := range coords {
		for _, h := range saHotspots {
			d := geo.HaversineKm(coord, h.Location)
			if d > hotspotRadiusKm {
				continue
			}
			score += (hotspotRadiusKm - d) / hotspotRadiusKm * h.RiskLevel / 10
		}
	}
	return clamp(score)
}

// accidentScore blends trip length with prevailing weather. Longer exposure
// and worse conditions both raise collision probability.
func accidentScore(distanceKm, weatherRisk float64) float64 {
	score := 20.0
	switch {
	case distanceKm > 500:
		score += 20
	case distanceKm > 200:
		score += 10
	case distanceKm > 100:
		score += 5
	}
	score += weatherRisk * 0.3
	return clamp(score)
}

// theftScore looks up the vehicle in the national theft table. Unknown or
// unspecified vehicles get the midpoint default.
func theftScore(vehicle string) float64 {
	if vehicle == "" {
		return defaultTheftRisk
	}
	if score, ok := vehicleTheftRisk[normalizeVehicle(vehicle)]; ok {
		return score
	}
	return defaultTheftRisk
}

// normalizeVehicle lowercases the model name and collapses every non-letter
// to an underscore, so "Toyota Hilux" and "toyota-hilux" hit the same key.
func normalizeVehicle(vehicle string) string {
	lower := strings.ToLower(vehicle)
	var b strings.Builder
	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
