// README: Fans out forecast lookups across sampled route coordinates and zips
// the results back in route order.
package weather

import (
	"context"
	"log"
	"sync"

	"khusela/internal/types"
)

// Fetcher is the single-point lookup the aggregator fans out over.
type Fetcher interface {
	Fetch(ctx context.Context, coord types.Coordinate) (Forecast, error)
}

// Aggregator collects forecasts for every sampled coordinate of a route.
type Aggregator struct {
	fetcher Fetcher
}

func NewAggregator(fetcher Fetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// Collect fetches a forecast for each coordinate concurrently. The returned
// slice has the same length and order as the input. A failed lookup degrades
// that single point to a fallback observation; Collect itself never fails, so
// one bad point cannot sink the whole route.
func (a *Aggregator) Collect(ctx context.Context, coords []types.Coordinate) []Observation {
	observations := make([]Observation, len(coords))

	var wg sync.WaitGroup
	for i, coord := range coords {
		i, coord := i, coord
		wg.Add(1)
		go func() {
			defer wg.Done()

			forecast, err := a.fetcher.Fetch(ctx, coord)
			if err != nil {
				log.Printf("weather fetch failed for %s: %v", coord, err)
				observations[i] = Observation{Coordinate: coord, IsFallback: true}
				return
			}
			observations[i] = Observation{Coordinate: coord, Forecast: forecast}
		}()
	}
	wg.Wait()

	return observations
}
