package maps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"khusela/internal/types"
)

const testPolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func newRoutesTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *RoutesClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewRoutesClient("test-key", srv.URL, WithHTTPClient(srv.Client()))
	return srv, client
}

func TestFetchRoute_Success(t *testing.T) {
	var gotPath, gotKey, gotMask string
	var gotBody computeRoutesRequest

	_, client := newRoutesTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")
		gotMask = r.Header.Get("X-Goog-FieldMask")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[{"distanceMeters":24500,"duration":"1860s","polyline":{"encodedPolyline":"` + testPolyline + `"}}]}`))
	})

	summary, err := client.FetchRoute(context.Background(),
		LocationRef{Address: "Johannesburg CBD"},
		LocationRef{Coordinate: &types.Coordinate{Lat: -26.2678, Lng: 27.8546}},
	)
	if err != nil {
		t.Fatalf("FetchRoute() error = %v", err)
	}

	if gotPath != "/directions/v2:computeRoutes" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotMask != routesFieldMask {
		t.Errorf("field mask header = %q", gotMask)
	}
	if gotBody.Origin.Address != "Johannesburg CBD" {
		t.Errorf("origin = %+v", gotBody.Origin)
	}
	if gotBody.Destination.Location == nil || gotBody.Destination.Location.LatLng.Latitude != -26.2678 {
		t.Errorf("destination = %+v", gotBody.Destination)
	}
	if gotBody.TravelMode != "DRIVE" {
		t.Errorf("travel mode = %q", gotBody.TravelMode)
	}

	if summary.DistanceMeters != 24500 {
		t.Errorf("DistanceMeters = %d, want 24500", summary.DistanceMeters)
	}
	if summary.Duration != "1860s" || summary.DurationSeconds != 1860 {
		t.Errorf("duration = %q / %d", summary.Duration, summary.DurationSeconds)
	}
	if summary.EncodedPolyline != testPolyline {
		t.Errorf("EncodedPolyline = %q", summary.EncodedPolyline)
	}
	if len(summary.SampledCoordinates) == 0 {
		t.Error("SampledCoordinates is empty")
	}
}

func TestFetchRoute_NoRoute(t *testing.T) {
	_, client := newRoutesTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	})

	_, err := client.FetchRoute(context.Background(),
		LocationRef{Address: "Cape Town"}, LocationRef{Address: "Mauritius"})
	if !errors.Is(err, ErrNoRouteFound) {
		t.Fatalf("FetchRoute() error = %v, want ErrNoRouteFound", err)
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		t.Error("empty route list should not be an UpstreamError")
	}
}

func TestFetchRoute_UpstreamFailure(t *testing.T) {
	_, client := newRoutesTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := client.FetchRoute(context.Background(),
		LocationRef{Address: "a"}, LocationRef{Address: "b"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("FetchRoute() error = %v, want *UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", upstream.StatusCode)
	}
	if upstream.Provider != "google-routes" {
		t.Errorf("Provider = %q", upstream.Provider)
	}
}

func TestFetchRoute_MalformedPolyline(t *testing.T) {
	_, client := newRoutesTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[{"distanceMeters":100,"duration":"60s","polyline":{"encodedPolyline":"_p~iF"}}]}`))
	})

	_, err := client.FetchRoute(context.Background(),
		LocationRef{Address: "a"}, LocationRef{Address: "b"})
	if err == nil {
		t.Fatal("expected error for malformed provider polyline")
	}
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"450s", 450},
		{"0s", 0},
		{"", 0},
		{"abc", 0},
		{"-5s", 0},
	}
	for _, tt := range tests {
		if got := parseDurationSeconds(tt.in); got != tt.want {
			t.Errorf("parseDurationSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
