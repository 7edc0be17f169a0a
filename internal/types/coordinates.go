package types

import (
	"math"
	"strconv"
)

type Coords struct {
	Latitude  float64
	Longitude float64
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Label formats the coordinates rounded to 4 decimal places, e.g. "51.5074°N, -0.1278°E".
// The hemisphere suffixes are fixed; negative values keep their sign.
func (c Coords) Label() string {
	return formatRounded(c.Latitude, 4) + "°N, " + formatRounded(c.Longitude, 4) + "°E"
}

func formatRounded(v float64, places int) string {
	scale := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}
