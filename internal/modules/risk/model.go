// README: Risk domain types: sub-scores, composite, bands, and the
// narrated analysis returned to clients.
package risk

import "time"

// Level buckets a composite score for display.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// LevelFor maps a composite score to its band.
func LevelFor(score float64) Level {
	switch {
	case score <= 30:
		return LevelLow
	case score <= 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Factors holds the four sub-scores and their weighted composite.
// All values are in [0,100].
type Factors struct {
	Weather   float64 `json:"weatherRisk"`
	Crime     float64 `json:"crimeRisk"`
	Accident  float64 `json:"accidentRisk"`
	Theft     float64 `json:"theftRisk"`
	Composite float64 `json:"compositeRisk"`
}

// Analysis is the narrative layer on top of the scores. PoweredBy is "ai"
// when the model produced the text and "rule-based" when the deterministic
// fallback did.
type Analysis struct {
	Analysis    string `json:"analysis"`
	PoweredBy   string `json:"poweredBy"`
	Confidence  string `json:"confidence"`
	PrimaryRisk string `json:"primaryRisk,omitempty"`
}

const (
	PoweredByAI        = "ai"
	PoweredByRuleBased = "rule-based"
)

// Alert is the short user-facing summary shown alongside the full analysis.
type Alert struct {
	Level        Level    `json:"level"`
	Message      string   `json:"message"`
	RiskScore    int      `json:"riskScore"`
	PrimaryRisks []string `json:"primaryRisks"`
}

// Assessment is the complete result for one route and vehicle.
type Assessment struct {
	Route       string    `json:"route"`
	Vehicle     string    `json:"vehicle,omitempty"`
	Factors     Factors   `json:"predictions"`
	Level       Level     `json:"riskLevel"`
	Alert       Alert     `json:"alert"`
	Analysis    Analysis  `json:"aiAnalysis"`
	GeneratedAt time.Time `json:"timestamp"`
}
