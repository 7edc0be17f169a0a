package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"

	"skycast/internal/weather"
)

// ErrSnapshotWrite wraps every failure to persist the forecast snapshot.
var ErrSnapshotWrite = errors.New("snapshot write failed")

// Store persists the last successful forecast as a pretty-printed JSON array.
// Each write replaces the whole file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store for the snapshot file at path
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "snapshot-store"),
	}
}

// Path returns the snapshot file location
func (s *Store) Path() string {
	return s.path
}

// Write replaces the snapshot with days. The data is synced to a temp file in the same
// directory and renamed over the target, so a failed write leaves the previous snapshot intact.
func (s *Store) Write(days []weather.ForecastDay) error {
	if days == nil {
		days = []weather.ForecastDay{}
	}

	data, err := json.MarshalIndent(days, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSnapshotWrite, err)
	}
	data = append(data, '\n')

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	s.logger.Debug("wrote forecast snapshot", "path", s.path, "days", len(days))
	return nil
}

// Read loads the current snapshot.
func (s *Store) Read() ([]weather.ForecastDay, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var days []weather.ForecastDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return days, nil
}
