package ai

import (
	"context"
)

// LLMProvider defines the contract for generating risk narratives.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// AnalyzeRisk takes a fully-built prompt and returns the model's
	// plain-text analysis.
	AnalyzeRisk(ctx context.Context, prompt string) (string, error)
}
