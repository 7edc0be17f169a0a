package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"net/http"

	"github.com/sourcegraph/conc/pool"

	"skycast/internal/config"
	"skycast/internal/providers/openweathermap"
)

// ErrIconFetchFailed wraps every per-icon failure. It never aborts a lookup.
var ErrIconFetchFailed = errors.New("icon fetch failed")

// IconProvider downloads raw PNG bytes for a condition code
type IconProvider interface {
	GetIcon(ctx context.Context, code string) ([]byte, error)
}

// Result is the outcome for one display slot. Image is nil when the slot stays empty.
type Result struct {
	Code  string
	Image image.Image
	Err   error
}

// Loader fetches and decodes icons through a bounded worker pool
type Loader struct {
	provider IconProvider
	workers  int
	logger   *slog.Logger
}

// NewIconLoader creates a loader backed by the OpenWeather icon host
func NewIconLoader(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) *Loader {
	client := openweathermap.NewIconClient(httpClient, cfg.Weather.IconBaseURL)
	return NewIconLoaderWithProvider(client, cfg.Icons.Workers, logger)
}

// NewIconLoaderWithProvider creates a loader with a custom provider
// This is useful for testing with mock providers
func NewIconLoaderWithProvider(provider IconProvider, workers int, logger *slog.Logger) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{
		provider: provider,
		workers:  workers,
		logger:   logger.With("component", "icon-loader"),
	}
}

// Load fetches and decodes a single icon
func (l *Loader) Load(ctx context.Context, code string) (image.Image, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty icon code", ErrIconFetchFailed)
	}

	data, err := l.provider.GetIcon(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIconFetchFailed, code, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: decode: %w", ErrIconFetchFailed, code, err)
	}
	return img, nil
}

// LoadAll loads one icon per slot. Results are index-aligned with codes.
// Empty codes are skipped, and a failed slot does not affect the others.
func (l *Loader) LoadAll(ctx context.Context, codes []string) []Result {
	results := make([]Result, len(codes))
	p := pool.New().WithMaxGoroutines(l.workers)

	for i, code := range codes {
		results[i].Code = code
		if code == "" {
			continue
		}
		p.Go(func() {
			img, err := l.Load(ctx, code)
			if err != nil {
				l.logger.Warn("failed to load weather icon", "slot", i, "code", code, "error", err)
			}
			results[i].Image = img
			results[i].Err = err
		})
	}
	p.Wait()

	return results
}
