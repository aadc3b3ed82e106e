// README: Open-Meteo forecast client with a circuit breaker in front of the
// upstream so a flapping provider fails fast instead of stalling every route.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"khusela/internal/types"
)

const hourlyVariables = "temperature_2m,rain,showers,wind_gusts_10m,weather_code"

// Client fetches hourly forecasts from Open-Meteo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) { cl.httpClient = c }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		circuit:    cb,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the hourly forecast for one coordinate. The window covers two
// past days plus the current one so scoring sees conditions leading into the
// trip, not just the snapshot at departure.
func (c *Client) Fetch(ctx context.Context, coord types.Coordinate) (Forecast, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	values.Set("hourly", hourlyVariables)
	values.Set("past_days", "2")
	values.Set("forecast_days", "1")

	u := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Forecast{}, fmt.Errorf("build forecast request: %w", err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			return nil, fmt.Errorf("open-meteo: status %d", resp.StatusCode)
		}

		var forecast Forecast
		if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
			return nil, fmt.Errorf("open-meteo: decode response: %w", err)
		}
		return forecast, nil
	})
	if err != nil {
		return Forecast{}, err
	}

	forecast, ok := result.(Forecast)
	if !ok {
		return Forecast{}, fmt.Errorf("open-meteo: unexpected result type")
	}
	return forecast, nil
}
