// README: One-shot demo: assess a route from the command line without the
// full API server (no database or Redis needed).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"khusela/internal/ai"
	"khusela/internal/config"
	"khusela/internal/maps"
	"khusela/internal/modules/risk"
	"khusela/internal/service"
	"khusela/internal/weather"
)

func main() {
	_ = godotenv.Load()

	origin := flag.String("from", "Johannesburg CBD", "start location")
	destination := flag.String("to", "Soweto", "end location")
	vehicle := flag.String("vehicle", "Toyota Hilux", "vehicle type")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var provider ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Printf("gemini init failed, using rule-based analysis: %v", err)
		} else {
			defer gemini.Close()
			provider = gemini
		}
	}

	routesClient := maps.NewRoutesClient(cfg.Routes.APIKey, cfg.Routes.BaseURL,
		maps.WithSampleStride(cfg.Risk.SampleStride))
	collector := weather.NewAggregator(weather.NewClient(cfg.Weather.BaseURL))
	assessor := service.NewAssessor(routesClient, collector, risk.NewScorer(), risk.NewNarrator(provider), nil)

	assessment, err := assessor.Assess(ctx, service.AssessCommand{
		Origin:      *origin,
		Destination: *destination,
		Vehicle:     *vehicle,
	})
	if err != nil {
		log.Fatalf("assessment failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(assessment); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n%s %s (score %d)\n", assessment.Alert.Level, assessment.Alert.Message, assessment.Alert.RiskScore)
}
