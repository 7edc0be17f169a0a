package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"skycast/internal/config"
	"skycast/internal/providers/openstreetmap"
	"skycast/internal/types"
)

// ErrLocationNotFound is returned when the geocoder has no match for the query.
var ErrLocationNotFound = errors.New("city not found")

// Service resolves free-text place names to coordinates
type Service interface {
	// Resolve geocodes a place name. An unknown or empty query returns ErrLocationNotFound.
	Resolve(ctx context.Context, query string) (*types.Location, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, query string) ([]openstreetmap.SearchAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service with the real Nominatim client
func NewLocationService(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) Service {
	client := openstreetmap.NewClient(httpClient, cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.RPS)
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, query string) (*types.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrLocationNotFound
	}

	results, err := s.geocodeProvider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		s.logger.Debug("geocoder returned no results", "query", query)
		return nil, ErrLocationNotFound
	}

	return translateLocation(query, &results[0])
}

// translateLocation converts a Nominatim search result to the domain Location type
func translateLocation(query string, resp *openstreetmap.SearchAPIResponse) (*types.Location, error) {
	lat, err := strconv.ParseFloat(resp.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude %q", ErrLocationNotFound, resp.Lat)
	}
	lon, err := strconv.ParseFloat(resp.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude %q", ErrLocationNotFound, resp.Lon)
	}

	name := resp.DisplayName
	if name == "" {
		name = resp.Name
	}

	return &types.Location{
		Query:       query,
		Coordinates: types.NewCoords(lat, lon),
		DisplayName: name,
	}, nil
}
