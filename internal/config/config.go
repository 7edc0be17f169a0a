package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Weather  WeatherConfig
	Geocoder GeocoderConfig
	Icons    IconsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port int `validate:"gt=0,lte=65535"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// HTTPConfig holds settings shared by all outbound clients
type HTTPConfig struct {
	Timeout time.Duration `validate:"gt=0"`
}

// WeatherConfig holds the one-call API settings. APIKey is the only value without a default.
type WeatherConfig struct {
	APIKey      string `validate:"required"`
	BaseURL     string `validate:"required,url"`
	IconBaseURL string `validate:"required,url"`
}

// GeocoderConfig holds Nominatim settings
type GeocoderConfig struct {
	BaseURL   string  `validate:"required,url"`
	UserAgent string  `validate:"required"`
	RPS       float64 `validate:"gte=0"` // 0 disables rate limiting
}

// IconsConfig holds icon loading settings
type IconsConfig struct {
	Workers int `validate:"gte=1,lte=16"`
}

// SnapshotConfig holds the forecast snapshot location
type SnapshotConfig struct {
	Path string `validate:"required"`
}

// flagBindings maps CLI flag names to config keys
var flagBindings = map[string]string{
	"api-key":    "weather.apiKey",
	"snapshot":   "snapshot.path",
	"log-level":  "log.level",
	"log-format": "log.format",
	"port":       "server.port",
}

// Load reads configuration from .env, the config file, environment variables and flags.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Populate the environment from .env before viper reads it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.skycast")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("weather.apiKey", "")
	v.SetDefault("weather.baseURL", "https://api.openweathermap.org/data/3.0/onecall")
	v.SetDefault("weather.iconBaseURL", "http://openweathermap.org/img/wn")
	v.SetDefault("geocoder.baseURL", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.userAgent", "skycast/1.0")
	v.SetDefault("geocoder.rps", 1.0)
	v.SetDefault("icons.workers", 4)
	v.SetDefault("snapshot.path", "weather_forecast.json")

	// Read from environment variables, e.g. SKYCAST_WEATHER_APIKEY
	v.SetEnvPrefix("SKYCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values against their struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewHTTPClient returns the client shared by the outbound providers
func (c *Config) NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.HTTP.Timeout,
	}
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
