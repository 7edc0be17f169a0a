package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// ErrTimezoneUnresolved is returned for points outside every known zone polygon, e.g. open ocean.
var ErrTimezoneUnresolved = errors.New("timezone unresolved")

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// Finder is the subset of tzf.F used by the service
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// service implements timezone lookup using tzf
type service struct {
	finder Finder
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// NewServiceWithFinder creates a service over a custom finder
// This is useful for testing without loading the polygon data
func NewServiceWithFinder(finder Finder) Service {
	return &service{finder: finder}
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrTimezoneUnresolved, latitude, longitude)
	}

	return timezone, nil
}
