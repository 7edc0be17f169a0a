package weather

import (
	"errors"
	"fmt"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

// FallbackIconCode is used for forecast days without an icon ("clear sky, day").
const FallbackIconCode = "01d"

// ErrWeatherFetchFailed matches every *FetchError via errors.Is.
var ErrWeatherFetchFailed = errors.New("weather fetch failed")

// FetchError reports a failed weather request: transport error, non-2xx status or undecodable body.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("weather fetch failed: %v", e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func (e *FetchError) Is(target error) bool {
	return target == ErrWeatherFetchFailed
}

// CurrentConditions holds the current readings in metric units.
// IconCode is empty when the payload has none.
type CurrentConditions struct {
	Temperature types.OptionalFloat
	Humidity    types.OptionalFloat
	Pressure    types.OptionalFloat
	WindSpeed   types.OptionalFloat
	Description types.OptionalString
	IconCode    string
}

// ForecastDay is one normalized daily record. The JSON keys are the snapshot file format.
type ForecastDay struct {
	DayLabel    string               `json:"date"`
	MinTemp     types.OptionalFloat  `json:"min_temp"`
	MaxTemp     types.OptionalFloat  `json:"max_temp"`
	Description types.OptionalString `json:"weather_desc"`
	IconCode    string               `json:"weather_icon"`
}

// Report is the result of one successful fetch: normalized current conditions and the
// raw daily entries in API order.
type Report struct {
	Current CurrentConditions
	Daily   []openweathermap.DailyAPIResponse
}
