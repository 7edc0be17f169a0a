package main

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"skycast/internal/location"
	"skycast/internal/lookup"
	"skycast/internal/render"
	"skycast/internal/weather"
)

// GetWeatherInput defines the query parameters for the weather endpoint
type GetWeatherInput struct {
	City string `query:"city" required:"true" minLength:"1" example:"London" doc:"City name to look up"`
}

// GetWeatherOutput is the display state of a completed lookup
type GetWeatherOutput struct {
	Body *render.View
}

// handleGetWeather runs one lookup and returns its display state
func (app *App) handleGetWeather(ctx context.Context, input *GetWeatherInput) (*GetWeatherOutput, error) {
	display, err := app.lookup.Run(ctx, input.City)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrLocationNotFound):
			return nil, huma.Error404NotFound("City not found")
		case errors.Is(err, lookup.ErrLookupInProgress):
			return nil, huma.Error409Conflict("A lookup is already in progress")
		case errors.Is(err, weather.ErrWeatherFetchFailed):
			return nil, huma.Error502BadGateway("Failed to fetch weather data")
		}

		app.logger.Error("weather lookup failed", "city", input.City, "error", err)
		return nil, huma.Error500InternalServerError("weather lookup failed")
	}

	return &GetWeatherOutput{Body: render.NewView(display)}, nil
}
