package risk

import (
	"fmt"
	"math"
)

// BuildAlert summarises the factors into a short user-facing alert. Any
// sub-score above 60 is surfaced as a primary risk.
func BuildAlert(factors Factors) Alert {
	level := LevelFor(factors.Composite)

	var message string
	switch level {
	case LevelLow:
		message = "Safe travels! Conditions look favorable for your journey."
	case LevelMedium:
		message = "Moderate risk detected. Consider precautions or alternative routes."
	default:
		message = "High risk conditions! Strong recommendation to delay or reroute."
	}

	primary := make([]string, 0, 4)
	if factors.Weather > 60 {
		primary = append(primary, fmt.Sprintf("Weather: %.0f%%", factors.Weather))
	}
	if factors.Crime > 60 {
		primary = append(primary, fmt.Sprintf("Crime: %.0f%%", factors.Crime))
	}
	if factors.Accident > 60 {
		primary = append(primary, fmt.Sprintf("Accidents: %.0f%%", factors.Accident))
	}
	if factors.Theft > 60 {
		primary = append(primary, fmt.Sprintf("Theft: %.0f%%", factors.Theft))
	}

	return Alert{
		Level:        level,
		Message:      message,
		RiskScore:    int(math.Round(factors.Composite)),
		PrimaryRisks: primary,
	}
}
