package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	// Weather lookup endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "get-weather",
		Method:      http.MethodGet,
		Path:        "/weather",
		Summary:     "Look up weather for a city",
		Description: "Geocodes the city, fetches current conditions and the daily forecast, writes the forecast snapshot and returns the display state with embedded icons",
		Tags:        []string{"weather"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict, http.StatusBadGateway},
	}, app.handleGetWeather)
}
