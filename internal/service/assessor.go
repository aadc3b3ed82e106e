// README: Route risk assessment orchestrator: fetch route, collect weather,
// score, narrate, cache.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"khusela/internal/maps"
	"khusela/internal/modules/risk"
	"khusela/internal/types"
	"khusela/internal/weather"
)

// RouteFetcher computes a route between two locations.
type RouteFetcher interface {
	FetchRoute(ctx context.Context, origin, destination maps.LocationRef) (*maps.RouteSummary, error)
}

// WeatherCollector gathers per-point forecasts along a route.
type WeatherCollector interface {
	Collect(ctx context.Context, coords []types.Coordinate) []weather.Observation
}

// AssessmentCache is the optional result cache. A nil cache disables caching.
type AssessmentCache interface {
	Get(ctx context.Context, key string) (*risk.Assessment, bool, error)
	Put(ctx context.Context, key string, assessment *risk.Assessment) error
}

// Assessor wires the full pipeline together.
type Assessor struct {
	routes   RouteFetcher
	weather  WeatherCollector
	scorer   *risk.Scorer
	narrator *risk.Narrator
	cache    AssessmentCache
}

func NewAssessor(routes RouteFetcher, collector WeatherCollector, scorer *risk.Scorer, narrator *risk.Narrator, cache AssessmentCache) *Assessor {
	return &Assessor{
		routes:   routes,
		weather:  collector,
		scorer:   scorer,
		narrator: narrator,
		cache:    cache,
	}
}

type AssessCommand struct {
	Origin      string
	Destination string
	Vehicle     string
}

// Assess runs the pipeline end to end for one route and vehicle. Cached
// results are served as-is while fresh ones are cached best-effort.
func (a *Assessor) Assess(ctx context.Context, cmd AssessCommand) (*risk.Assessment, error) {
	if cmd.Origin == "" || cmd.Destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	cacheKey := risk.Key(cmd.Origin, cmd.Destination, cmd.Vehicle)
	if a.cache != nil {
		cached, ok, err := a.cache.Get(ctx, cacheKey)
		if err != nil {
			log.Printf("risk cache lookup failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	summary, err := a.routes.FetchRoute(ctx,
		maps.LocationRef{Address: cmd.Origin},
		maps.LocationRef{Address: cmd.Destination},
	)
	if err != nil {
		return nil, err
	}

	observations := a.weather.Collect(ctx, summary.SampledCoordinates)

	factors := a.scorer.Score(risk.Input{
		Coordinates:  summary.SampledCoordinates,
		Observations: observations,
		DistanceKm:   float64(summary.DistanceMeters) / 1000,
		Vehicle:      cmd.Vehicle,
	})

	analysis := a.narrator.Narrate(ctx, factors, cmd.Origin, cmd.Destination, cmd.Vehicle)

	assessment := &risk.Assessment{
		Route:       fmt.Sprintf("%s → %s", cmd.Origin, cmd.Destination),
		Vehicle:     cmd.Vehicle,
		Factors:     factors,
		Level:       risk.LevelFor(factors.Composite),
		Alert:       risk.BuildAlert(factors),
		Analysis:    analysis,
		GeneratedAt: time.Now().UTC(),
	}

	if a.cache != nil {
		if err := a.cache.Put(ctx, cacheKey, assessment); err != nil {
			log.Printf("risk cache store failed: %v", err)
		}
	}
	return assessment, nil
}

// RouteWithWeather is the route + forecast view without scoring, used by the
// route preview endpoint.
type RouteWithWeather struct {
	*maps.RouteSummary
	WeatherAlongRoute []weather.Observation `json:"weatherAlongRoute"`
}

func (a *Assessor) FetchRoute(ctx context.Context, origin, destination string) (*maps.RouteSummary, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}
	return a.routes.FetchRoute(ctx,
		maps.LocationRef{Address: origin},
		maps.LocationRef{Address: destination},
	)
}

func (a *Assessor) FetchRouteWithWeather(ctx context.Context, origin, destination string) (*RouteWithWeather, error) {
	summary, err := a.FetchRoute(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	return &RouteWithWeather{
		RouteSummary:      summary,
		WeatherAlongRoute: a.weather.Collect(ctx, summary.SampledCoordinates),
	}, nil
}
