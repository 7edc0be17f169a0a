package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"skycast/internal/lookup"
)

// Lookup runs one weather lookup per request
type Lookup interface {
	Run(ctx context.Context, city string) (*lookup.Display, error)
	State() lookup.State
}

// App encapsulates application dependencies
type App struct {
	mux    *http.ServeMux
	api    huma.API
	logger *slog.Logger
	lookup Lookup
}

// NewApp creates a new application with injected dependencies
func NewApp(runner Lookup, logger *slog.Logger) *App {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	config := huma.DefaultConfig("Skycast API", "1.0.0")
	config.Info.Description = "Current weather and daily forecast for a city"

	api := humago.New(mux, config)

	app := &App{
		mux:    mux,
		api:    api,
		logger: logger.With("component", "api"),
		lookup: runner,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Handler exposes the router, mainly for tests
func (app *App) Handler() http.Handler {
	return app.mux
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return http.ListenAndServe(addr, app.mux)
}
