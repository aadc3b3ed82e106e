// README: Geocoding wrapper around the Google Maps SDK, used when saving
// destinations by free-form address.
package maps

import (
	"context"
	"fmt"

	gmaps "googlemaps.github.io/maps"

	"khusela/internal/types"
)

// Geocoder resolves free-form addresses to coordinates.
type Geocoder struct {
	client *gmaps.Client
}

// NewGeocoder creates a Geocoder with the given API key.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// Geocode returns the coordinates and formatted address for the first
// geocoding match. A query with no matches is an UpstreamError rather than a
// nil result so callers never persist a destination without coordinates.
func (g *Geocoder) Geocode(ctx context.Context, address string) (types.Coordinate, string, error) {
	results, err := g.client.Geocode(ctx, &gmaps.GeocodingRequest{
		Address: address,
		Region:  "za",
	})
	if err != nil {
		return types.Coordinate{}, "", &UpstreamError{Provider: "google-geocoding", Err: err}
	}
	if len(results) == 0 {
		return types.Coordinate{}, "", &UpstreamError{
			Provider: "google-geocoding",
			Err:      fmt.Errorf("no geocoding results for %q", address),
		}
	}

	loc := results[0].Geometry.Location
	return types.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, results[0].FormattedAddress, nil
}
