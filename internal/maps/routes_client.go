// README: Google Routes API v2 client. Fetches a driving route between two
// locations and returns its geometry pre-decoded and sampled.
package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"khusela/internal/geo"
	"khusela/internal/types"
)

// ErrNoRouteFound is returned when the provider answers successfully but has
// no route between the given locations. Mapped to a 404 at the API boundary.
var ErrNoRouteFound = errors.New("no route found between origin and destination")

// UpstreamError wraps a provider-side failure (transport error or non-2xx
// response) so callers can distinguish it from bad input.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// LocationRef identifies a route endpoint either by free-form address or by
// coordinates. Exactly one of the two should be set.
type LocationRef struct {
	Address    string
	Coordinate *types.Coordinate
}

// RouteSummary is the decoded result of a route fetch.
type RouteSummary struct {
	DistanceMeters     int                `json:"distanceMeters"`
	Duration           string             `json:"duration"`
	DurationSeconds    int                `json:"durationSeconds"`
	EncodedPolyline    string             `json:"encodedPolyline"`
	SampledCoordinates []types.Coordinate `json:"sampledCoordinates"`
}

// RoutesClient talks to the Routes API v2 computeRoutes endpoint.
type RoutesClient struct {
	apiKey       string
	baseURL      string
	sampleStride int
	httpClient   *http.Client
}

type RoutesOption func(*RoutesClient)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) RoutesOption {
	return func(rc *RoutesClient) { rc.httpClient = c }
}

// WithSampleStride overrides the coordinate sampling interval.
func WithSampleStride(stride int) RoutesOption {
	return func(rc *RoutesClient) { rc.sampleStride = stride }
}

func NewRoutesClient(apiKey, baseURL string, opts ...RoutesOption) *RoutesClient {
	c := &RoutesClient{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		sampleStride: geo.DefaultSampleStride,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// computeRoutes request/response wire types. Only the fields named in the
// field mask come back, so the response shape stays small.

type waypoint struct {
	Address  string  `json:"address,omitempty"`
	Location *latLng `json:"location,omitempty"`
}

type latLng struct {
	LatLng coordinates `json:"latLng"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type computeRoutesRequest struct {
	Origin      waypoint `json:"origin"`
	Destination waypoint `json:"destination"`
	TravelMode  string   `json:"travelMode"`
}

type computeRoutesResponse struct {
	Routes []struct {
		DistanceMeters int    `json:"distanceMeters"`
		Duration       string `json:"duration"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
	} `json:"routes"`
}

const routesFieldMask = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline"

// FetchRoute computes a driving route and returns its summary with the
// polyline already decoded and sampled for downstream weather lookups.
func (c *RoutesClient) FetchRoute(ctx context.Context, origin, destination LocationRef) (*RouteSummary, error) {
	reqBody := computeRoutesRequest{
		Origin:      toWaypoint(origin),
		Destination: toWaypoint(destination),
		TravelMode:  "DRIVE",
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal route request: %w", err)
	}

	url := c.baseURL + "/directions/v2:computeRoutes"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build route request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: "google-routes", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &UpstreamError{Provider: "google-routes", StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Provider:   "google-routes",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", truncate(body, 200)),
		}
	}

	var parsed computeRoutesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &UpstreamError{Provider: "google-routes", StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(parsed.Routes) == 0 {
		return nil, ErrNoRouteFound
	}

	route := parsed.Routes[0]
	coords, err := geo.Decode(route.Polyline.EncodedPolyline)
	if err != nil {
		return nil, fmt.Errorf("route polyline: %w", err)
	}

	return &RouteSummary{
		DistanceMeters:     route.DistanceMeters,
		Duration:           route.Duration,
		DurationSeconds:    parseDurationSeconds(route.Duration),
		EncodedPolyline:    route.Polyline.EncodedPolyline,
		SampledCoordinates: geo.Sample(coords, c.sampleStride),
	}, nil
}

func toWaypoint(ref LocationRef) waypoint {
	if ref.Coordinate != nil {
		return waypoint{Location: &latLng{LatLng: coordinates{
			Latitude:  ref.Coordinate.Lat,
			Longitude: ref.Coordinate.Lng,
		}}}
	}
	return waypoint{Address: ref.Address}
}

// parseDurationSeconds parses the provider's "450s" duration format. An
// unparseable value yields 0 rather than failing the whole fetch.
func parseDurationSeconds(d string) int {
	trimmed := strings.TrimSuffix(d, "s")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
