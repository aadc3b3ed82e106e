// README: Turns risk factors into a short narrative. Uses the LLM when
// available and falls back to deterministic rule-based text; it never
// returns an error to callers.
package risk

import (
	"context"
	"fmt"
	"log"

	"khusela/internal/ai"
)

// Narrator produces the analysis text for an assessment. A nil provider
// means rule-based analysis only.
type Narrator struct {
	provider ai.LLMProvider
}

func NewNarrator(provider ai.LLMProvider) *Narrator {
	return &Narrator{provider: provider}
}

// Narrate builds the analysis for the given factors. The LLM path is tried
// first; any failure degrades to the rule-based fallback rather than
// propagating an error.
func (n *Narrator) Narrate(ctx context.Context, factors Factors, origin, destination, vehicle string) Analysis {
	if n.provider == nil {
		return fallbackAnalysis(factors)
	}

	prompt := buildPrompt(factors, origin, destination, vehicle)
	text, err := n.provider.AnalyzeRisk(ctx, prompt)
	if err != nil {
		log.Printf("ai analysis failed, using rule-based fallback: %v", err)
		return fallbackAnalysis(factors)
	}

	return Analysis{
		Analysis:   text,
		PoweredBy:  PoweredByAI,
		Confidence: "high",
	}
}

func buildPrompt(factors Factors, origin, destination, vehicle string) string {
	if vehicle == "" {
		vehicle = "Unknown"
	}
	return fmt.Sprintf(`You are a South African travel risk expert. Analyze this route intelligently:

ROUTE: %s → %s
VEHICLE: %s

RISK SCORES:
• Weather Risk: %.0f%%
• Crime Risk: %.0f%%
• Accident Risk: %.0f%%
• Theft Risk: %.0f%%
• Overall: %.0f%%

Provide:
1. ONE sentence identifying the primary concern
2. ONE specific South African context reason why
3. ONE actionable recommendation

Be concise, practical, and show local expertise. Focus on the highest risk factor.`,
		origin, destination, vehicle,
		factors.Weather, factors.Crime, factors.Accident, factors.Theft, factors.Composite)
}

// riskOrder fixes the tie-break for the fallback: the first factor in this
// order wins when sub-scores are equal.
var riskOrder = []string{"weather", "crime", "accident", "theft"}

var fallbackInsights = map[string]string{
	"weather":  "Weather risk is elevated (%s%%). South African thunderstorms can produce destructive hail and flash flooding, particularly during summer months.",
	"crime":    "Crime risk is significant (%s%%). This route passes through areas with elevated vehicle crime rates, especially for the current time and vehicle type.",
	"accident": "Accident probability is concerning (%s%%). Traffic conditions, road infrastructure, and driver behavior patterns increase collision risk on this route.",
	"theft":    "Vehicle theft risk is high (%s%%). Your vehicle type is frequently targeted by criminals in this area, particularly during certain times.",
}

var fallbackRecommendations = map[string]string{
	"weather":  "Monitor weather updates closely and consider delaying travel until conditions improve",
	"crime":    "Travel during daylight hours, avoid stopping unnecessarily, and stay alert in high-risk zones",
	"accident": "Reduce speed, maintain safe following distances, and stay focused on defensive driving",
	"theft":    "Use secure parking facilities and avoid leaving valuables visible in the vehicle",
}

func fallbackAnalysis(factors Factors) Analysis {
	values := map[string]float64{
		"weather":  factors.Weather,
		"crime":    factors.Crime,
		"accident": factors.Accident,
		"theft":    factors.Theft,
	}

	top := riskOrder[0]
	for _, name := range riskOrder[1:] {
		if values[name] > values[top] {
			top = name
		}
	}

	value := fmt.Sprintf("%.0f", values[top])
	insight := fmt.Sprintf(fallbackInsights[top], value)
	text := fmt.Sprintf("%s Recommendation: %s.", insight, fallbackRecommendations[top])

	return Analysis{
		Analysis:    text,
		PoweredBy:   PoweredByRuleBased,
		Confidence:  "medium",
		PrimaryRisk: top,
	}
}
