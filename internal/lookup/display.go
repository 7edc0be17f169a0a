package lookup

import (
	"image"

	"skycast/internal/types"
	"skycast/internal/weather"
)

// Display is everything a renderer needs for one completed lookup.
// It is built once at the end of a successful run and never mutated afterwards.
type Display struct {
	RunID       string
	Query       string
	Place       string
	Timezone    types.OptionalString
	Coordinates types.Coords
	LocalTime   types.OptionalString
	Current     weather.CurrentConditions
	CurrentIcon image.Image
	Forecast    []ForecastRow
}

// ForecastRow pairs a forecast day with its icon. Icon is nil when loading failed.
type ForecastRow struct {
	Day  weather.ForecastDay
	Icon image.Image
}
