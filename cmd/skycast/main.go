package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"skycast/internal/config"
	"skycast/internal/location"
	"skycast/internal/lookup"
	"skycast/internal/render"
	"skycast/internal/weather"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("skycast", pflag.ContinueOnError)
	flags.String("api-key", "", "OpenWeather API key (overrides SKYCAST_WEATHER_APIKEY)")
	flags.String("snapshot", "", "path of the forecast snapshot file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text, json")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: skycast [flags] <city>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	city := strings.TrimSpace(strings.Join(flags.Args(), " "))
	if city == "" {
		flags.Usage()
		return 2
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	runner, err := lookup.NewRunner(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize lookup", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	display, err := runner.Run(ctx, city)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		return 1
	}

	for _, line := range render.Lines(display) {
		fmt.Println(line)
	}
	return 0
}

// errorMessage maps a failed lookup to the short message shown to the user
func errorMessage(err error) string {
	switch {
	case errors.Is(err, location.ErrLocationNotFound):
		return "City not found"
	case errors.Is(err, weather.ErrWeatherFetchFailed):
		return fmt.Sprintf("Failed to fetch weather data: %v", errors.Unwrap(err))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
