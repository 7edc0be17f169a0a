package lookup

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	_ "time/tzdata" // zone data for LoadLocation on hosts without it

	"github.com/google/uuid"

	"skycast/internal/config"
	"skycast/internal/icons"
	"skycast/internal/location"
	"skycast/internal/snapshot"
	"skycast/internal/timezone"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// ErrLookupInProgress is returned when a lookup is triggered while another is running.
// The second trigger is dropped, not queued.
var ErrLookupInProgress = errors.New("lookup already in progress")

const localTimeLayout = "2006-01-02 15:04:05"

// SnapshotWriter persists the normalized forecast
type SnapshotWriter interface {
	Write(days []weather.ForecastDay) error
}

// IconLoader loads one icon per display slot
type IconLoader interface {
	LoadAll(ctx context.Context, codes []string) []icons.Result
}

// Runner executes the lookup flow. At most one run is in flight at a time.
type Runner struct {
	locations location.Service
	timezones timezone.Service
	weather   weather.Service
	snapshots SnapshotWriter
	icons     IconLoader
	logger    *slog.Logger

	// dayLocation is the zone used for forecast weekday names (system local time)
	dayLocation *time.Location
	now         func() time.Time

	mu    sync.Mutex
	state atomic.Int32
}

// NewRunner wires the runner with the real services
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	httpClient := cfg.NewHTTPClient()
	return NewRunnerWithServices(
		location.NewLocationService(cfg, httpClient, logger),
		tzSvc,
		weather.NewWeatherService(cfg, httpClient, logger),
		snapshot.NewStore(cfg.Snapshot.Path, logger),
		icons.NewIconLoader(cfg, httpClient, logger),
		logger,
	), nil
}

// NewRunnerWithServices creates a runner with custom services
// This is useful for testing with mock services
func NewRunnerWithServices(
	locations location.Service,
	timezones timezone.Service,
	weatherSvc weather.Service,
	snapshots SnapshotWriter,
	iconLoader IconLoader,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		locations:   locations,
		timezones:   timezones,
		weather:     weatherSvc,
		snapshots:   snapshots,
		icons:       iconLoader,
		logger:      logger.With("component", "lookup"),
		dayLocation: time.Local,
		now:         time.Now,
	}
}

// State reports the step of the run in flight, or StateIdle
func (r *Runner) State() State {
	return State(r.state.Load())
}

func (r *Runner) enter(state State, logger *slog.Logger) {
	r.state.Store(int32(state))
	logger.Debug("lookup state", "state", state.String())
}

// Run performs one complete lookup for city.
//
// Location-not-found and weather fetch failures abort the run before anything is
// persisted or rendered. An unresolved timezone only blanks the timezone and local
// time fields. Icon failures leave their slot empty.
func (r *Runner) Run(ctx context.Context, city string) (*Display, error) {
	if !r.mu.TryLock() {
		return nil, ErrLookupInProgress
	}
	defer r.mu.Unlock()
	defer r.state.Store(int32(StateIdle))

	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID, "city", city)

	r.enter(StateResolvingLocation, logger)
	loc, err := r.locations.Resolve(ctx, city)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			logger.Warn("city not found")
		} else {
			logger.Error("failed to resolve location", "error", err)
		}
		return nil, err
	}

	r.enter(StateResolvingTimezone, logger)
	tzName, localTime := r.resolveTimezone(loc.Coordinates, logger)

	r.enter(StateFetchingWeather, logger)
	report, err := r.weather.GetWeather(ctx, loc.Coordinates)
	if err != nil {
		logger.Error("failed to fetch weather", "error", err)
		return nil, err
	}

	r.enter(StatePersisting, logger)
	days := weather.NormalizeDaily(report.Daily, r.dayLocation)
	if err := r.snapshots.Write(days); err != nil {
		logger.Error("failed to write forecast snapshot", "error", err)
		return nil, err
	}

	r.enter(StateRendering, logger)
	display := &Display{
		RunID:       runID,
		Query:       loc.Query,
		Place:       loc.DisplayName,
		Timezone:    tzName,
		Coordinates: loc.Coordinates,
		LocalTime:   localTime,
		Current:     report.Current,
		Forecast:    make([]ForecastRow, len(days)),
	}

	// slot 0 is the current conditions, slot i+1 is forecast day i
	codes := make([]string, 0, len(days)+1)
	codes = append(codes, report.Current.IconCode)
	for _, day := range days {
		codes = append(codes, day.IconCode)
	}
	results := r.icons.LoadAll(ctx, codes)

	display.CurrentIcon = imageAt(results, 0)
	for i, day := range days {
		display.Forecast[i] = ForecastRow{Day: day, Icon: imageAt(results, i+1)}
	}

	logger.Info("weather data fetched successfully", "days", len(days))
	return display, nil
}

func imageAt(results []icons.Result, i int) image.Image {
	if i >= len(results) {
		return nil
	}
	return results[i].Image
}

func (r *Runner) resolveTimezone(coords types.Coords, logger *slog.Logger) (types.OptionalString, types.OptionalString) {
	name, err := r.timezones.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		logger.Warn("timezone unresolved, continuing without local time", "error", err)
		return types.OptionalString{}, types.OptionalString{}
	}

	zone, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("failed to load timezone", "timezone", name, "error", err)
		return types.SomeString(name), types.OptionalString{}
	}

	return types.SomeString(name), types.SomeString(r.now().In(zone).Format(localTimeLayout))
}
