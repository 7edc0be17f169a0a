package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"skycast/internal/config"
	"skycast/internal/lookup"
)

func main() {
	flags := pflag.NewFlagSet("skycast-api", pflag.ExitOnError)
	flags.Int("port", 0, "port to listen on")
	flags.String("api-key", "", "OpenWeather API key")
	flags.String("snapshot", "", "path of the forecast snapshot file")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text, json")
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	runner, err := lookup.NewRunner(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize lookup: %v", err)
	}

	// Create app
	app := NewApp(runner, logger)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
