// README: Entry point; loads config, wires the risk pipeline and stores,
// starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"khusela/internal/ai"
	"khusela/internal/config"
	httptransport "khusela/internal/http"
	"khusela/internal/infra"
	"khusela/internal/maps"
	"khusela/internal/modules/alerts"
	"khusela/internal/modules/assets"
	"khusela/internal/modules/destinations"
	"khusela/internal/modules/risk"
	"khusela/internal/modules/routes"
	"khusela/internal/service"
	"khusela/internal/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	routesClient := maps.NewRoutesClient(cfg.Routes.APIKey, cfg.Routes.BaseURL,
		maps.WithSampleStride(cfg.Risk.SampleStride))
	weatherClient := weather.NewClient(cfg.Weather.BaseURL)
	collector := weather.NewAggregator(weatherClient)

	var provider ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Printf("gemini init failed, narratives will be rule-based: %v", err)
		} else {
			defer gemini.Close()
			provider = gemini
		}
	} else {
		log.Print("GEMINI_API_KEY not set, narratives will be rule-based")
	}

	cache := risk.NewCache(redisClient, time.Duration(cfg.Risk.CacheTTLHours)*time.Hour)
	assessor := service.NewAssessor(routesClient, collector, risk.NewScorer(), risk.NewNarrator(provider), cache)

	routesSvc := routes.NewService(routes.NewStore(dbPool))
	alertsSvc := alerts.NewService(alerts.NewStore(dbPool))

	var geocoder destinations.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := maps.NewGeocoder(cfg.Maps.APIKey)
		if err != nil {
			log.Printf("geocoder init failed, destinations saved without coordinates: %v", err)
		} else {
			geocoder = g
		}
	}
	destinationsSvc := destinations.NewService(destinations.NewStore(dbPool), geocoder)
	assetsSvc := assets.NewService(assets.NewStore(dbPool))

	handler := httptransport.NewRouter(assessor, routesSvc, alertsSvc, destinationsSvc, assetsSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
