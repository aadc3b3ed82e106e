// README: Handler tests for the risk and route endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"khusela/internal/geo"
	"khusela/internal/http/handlers"
	"khusela/internal/maps"
	"khusela/internal/modules/risk"
	"khusela/internal/service"
	"khusela/internal/types"
	"khusela/internal/weather"
)

type stubRouteFetcher struct {
	summary *maps.RouteSummary
	err     error
}

func (s *stubRouteFetcher) FetchRoute(context.Context, maps.LocationRef, maps.LocationRef) (*maps.RouteSummary, error) {
	return s.summary, s.err
}

type stubCollector struct{}

func (stubCollector) Collect(_ context.Context, coords []types.Coordinate) []weather.Observation {
	out := make([]weather.Observation, len(coords))
	for i, c := range coords {
		out[i] = weather.Observation{Coordinate: c, IsFallback: true}
	}
	return out
}

func testSummary() *maps.RouteSummary {
	return &maps.RouteSummary{
		DistanceMeters:  24500,
		Duration:        "1860s",
		DurationSeconds: 1860,
		EncodedPolyline: "_p~iF~ps|U",
		SampledCoordinates: []types.Coordinate{
			{Lat: -26.2041, Lng: 28.0473},
			{Lat: -26.2678, Lng: 27.8546},
		},
	}
}

// buildTestRouter wires a minimal Gin engine with the route and risk handlers.
func buildTestRouter(fetcher service.RouteFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	assessor := service.NewAssessor(fetcher, stubCollector{}, risk.NewScorer(), risk.NewNarrator(nil), nil)

	r := gin.New()
	routeHandler := handlers.NewRouteHandler(assessor)
	r.POST("/api/route/fetch-route", routeHandler.FetchRoute)
	r.POST("/api/route/route-with-weather", routeHandler.FetchRouteWithWeather)
	riskHandler := handlers.NewRiskHandler(assessor)
	r.POST("/api/risk/assess", riskHandler.Assess)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}

func TestAssess_Success(t *testing.T) {
	r := buildTestRouter(&stubRouteFetcher{summary: testSummary()})

	w := doRequest(r, http.MethodPost, "/api/risk/assess", map[string]any{
		"startLocation": "Johannesburg CBD",
		"endLocation":   "Soweto",
		"vehicleType":   "Toyota Hilux",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("success = false: %s", w.Body.String())
	}

	var assessment risk.Assessment
	if err := json.Unmarshal(env.Data, &assessment); err != nil {
		t.Fatalf("decode assessment: %v", err)
	}
	if assessment.Analysis.PoweredBy != risk.PoweredByRuleBased {
		t.Errorf("poweredBy = %q, want rule-based with nil provider", assessment.Analysis.PoweredBy)
	}
	if assessment.Factors.Theft != 90 {
		t.Errorf("theft = %v, want 90", assessment.Factors.Theft)
	}
}

func TestAssess_MissingFields(t *testing.T) {
	r := buildTestRouter(&stubRouteFetcher{summary: testSummary()})

	w := doRequest(r, http.MethodPost, "/api/risk/assess", map[string]any{
		"startLocation": "Johannesburg CBD",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success {
		t.Error("error response should have success=false")
	}
}

func TestFetchRoute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no route", maps.ErrNoRouteFound, http.StatusNotFound},
		{"malformed polyline", fmt.Errorf("route polyline: %w", geo.ErrDecode), http.StatusBadRequest},
		{"upstream failure", &maps.UpstreamError{Provider: "google-routes", StatusCode: 500, Err: errors.New("boom")}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildTestRouter(&stubRouteFetcher{err: tt.err})
			w := doRequest(r, http.MethodPost, "/api/route/fetch-route", map[string]any{
				"startLocation": "a",
				"endLocation":   "b",
			})
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if env := decodeEnvelope(t, w); env.Success {
				t.Error("error response should have success=false")
			}
		})
	}
}

func TestFetchRoute_UpstreamDetailNotExposed(t *testing.T) {
	upstream := &maps.UpstreamError{
		Provider:   "google-routes",
		StatusCode: http.StatusForbidden,
		Err:        fmt.Errorf("unexpected response: quota denied for key=AIzaSyTESTONLY"),
	}
	r := buildTestRouter(&stubRouteFetcher{err: upstream})

	w := doRequest(r, http.MethodPost, "/api/route/fetch-route", map[string]any{
		"startLocation": "Johannesburg CBD",
		"endLocation":   "Soweto",
	})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "AIzaSyTESTONLY") || strings.Contains(body, "quota denied") {
		t.Errorf("upstream detail leaked to client: %s", body)
	}
	env := decodeEnvelope(t, w)
	if env.Success {
		t.Error("error response should have success=false")
	}
	if env.Error != "upstream provider failed" {
		t.Errorf("error = %q, want generic upstream message", env.Error)
	}
}

func TestFetchRouteWithWeather_Success(t *testing.T) {
	r := buildTestRouter(&stubRouteFetcher{summary: testSummary()})

	w := doRequest(r, http.MethodPost, "/api/route/route-with-weather", map[string]any{
		"startLocation": "Johannesburg CBD",
		"endLocation":   "Soweto",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var result struct {
		EncodedPolyline   string                `json:"encodedPolyline"`
		WeatherAlongRoute []weather.Observation `json:"weatherAlongRoute"`
	}
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.EncodedPolyline == "" {
		t.Error("route summary fields should be inlined in the response")
	}
	if len(result.WeatherAlongRoute) != 2 {
		t.Errorf("weather observations = %d, want 2", len(result.WeatherAlongRoute))
	}
}

func TestFetchRoute_InvalidJSON(t *testing.T) {
	r := buildTestRouter(&stubRouteFetcher{summary: testSummary()})

	req := httptest.NewRequest(http.MethodPost, "/api/route/fetch-route", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
