package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// API Docs: https://openweathermap.org/api/one-call-3
// Sample request: https://api.openweathermap.org/data/3.0/onecall?lat=51.5074&lon=-0.1278&units=metric&exclude=hourly&appid=KEY
const (
	baseOneCallURL = "https://api.openweathermap.org/data/3.0/onecall"

	// breakerTrips is the number of consecutive failures that opens the breaker.
	breakerTrips   = 5
	breakerTimeout = 30 * time.Second
)

var (
	errNoAPIKey     = errors.New("openweathermap api key is not configured")
	errEmptyPayload = errors.New("response has neither current nor daily data")
)

// OneCallClient fetches One Call 3.0 data behind a circuit breaker
type OneCallClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *gobreaker.CircuitBreaker
}

// NewOneCallClient creates a One Call client. An empty base uses the public endpoint.
func NewOneCallClient(httpClient *http.Client, base, apiKey string) *OneCallClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if base == "" {
		base = baseOneCallURL
	}
	return &OneCallClient{
		httpClient: httpClient,
		baseURL:    base,
		apiKey:     apiKey,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openweathermap-onecall",
			Timeout: breakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerTrips
			},
			IsSuccessful: countsAsSuccess,
		}),
	}
}

// GetOneCall fetches current conditions and the daily forecast in metric units.
// Transport errors, non-2xx statuses and undecodable bodies are all returned as errors.
func (c *OneCallClient) GetOneCall(ctx context.Context, latitude, longitude float64) (*OneCallAPIResponse, error) {
	if c.apiKey == "" {
		return nil, errNoAPIKey
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, latitude, longitude)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("weather API unavailable: %w", err)
		}
		return nil, err
	}

	return result.(*OneCallAPIResponse), nil
}

// countsAsSuccess keeps callers that gave up from tripping the breaker
func countsAsSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func (c *OneCallClient) fetch(ctx context.Context, latitude, longitude float64) (*OneCallAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", "metric")
	q.Set("exclude", "hourly")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// The request URL carries the API key, so only the cause of a *url.Error is kept
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp OneCallAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Current == nil && apiResp.Daily == nil {
		return nil, fmt.Errorf("failed to decode response: %w", errEmptyPayload)
	}

	return &apiResp, nil
}
