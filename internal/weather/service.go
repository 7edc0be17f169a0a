package weather

import (
	"context"
	"log/slog"
	"net/http"

	"skycast/internal/config"
	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

// OneCallProvider fetches raw One Call data
type OneCallProvider interface {
	// GetOneCall fetches current conditions and the daily forecast for the given coordinates
	GetOneCall(ctx context.Context, latitude, longitude float64) (*openweathermap.OneCallAPIResponse, error)
}

// Service provides current conditions and the daily forecast
type Service interface {
	// GetWeather returns a *FetchError on any upstream failure
	GetWeather(ctx context.Context, coords types.Coords) (*Report, error)
}

type weatherService struct {
	oneCallProvider OneCallProvider
	logger          *slog.Logger
}

// NewWeatherService creates a new weather service with the real One Call client
func NewWeatherService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) Service {
	client := openweathermap.NewOneCallClient(httpClient, cfg.Weather.BaseURL, cfg.Weather.APIKey)
	return NewWeatherServiceWithProvider(client, logger)
}

// NewWeatherServiceWithProvider creates a new weather service with a custom provider
// This is useful for testing with mock providers
func NewWeatherServiceWithProvider(oneCallProvider OneCallProvider, logger *slog.Logger) Service {
	return &weatherService{
		oneCallProvider: oneCallProvider,
		logger:          logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetWeather(ctx context.Context, coords types.Coords) (*Report, error) {
	apiResponse, err := s.oneCallProvider.GetOneCall(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get weather from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, &FetchError{Cause: err}
	}

	s.logger.Debug("fetched weather",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"daily_entries", len(apiResponse.Daily),
	)

	return &Report{
		Current: NormalizeCurrent(apiResponse.Current),
		Daily:   apiResponse.Daily,
	}, nil
}
