package render

import (
	"skycast/internal/lookup"
)

// View is the JSON form of a completed lookup. Icon fields hold PNG data URIs
// and are empty when the slot has no icon.
type View struct {
	RunID       string        `json:"runId" doc:"Identifier of the lookup run"`
	City        string        `json:"city" example:"London" doc:"City as queried"`
	Place       string        `json:"place,omitempty" doc:"Geocoder display name"`
	Timezone    string        `json:"timezone" example:"Europe/London" doc:"IANA timezone, or N/A"`
	Coordinates string        `json:"coordinates" example:"51.5074°N, -0.1278°E"`
	LocalTime   string        `json:"localTime" example:"2023-11-14 12:00:00" doc:"Local time at the city, or N/A"`
	Current     CurrentView   `json:"current"`
	Forecast    []ForecastRow `json:"forecast"`
}

// CurrentView holds the current-conditions labels and icon
type CurrentView struct {
	Labels   []string `json:"labels"`
	IconCode string   `json:"iconCode,omitempty"`
	Icon     string   `json:"icon,omitempty"`
}

// ForecastRow is one forecast day with its labels and icon
type ForecastRow struct {
	Day      string   `json:"day" example:"Tuesday"`
	Labels   []string `json:"labels"`
	IconCode string   `json:"iconCode"`
	Icon     string   `json:"icon,omitempty"`
}

// NewView converts the display state. Icons that fail to encode are left empty.
func NewView(d *lookup.Display) *View {
	v := &View{
		RunID:       d.RunID,
		City:        d.Query,
		Place:       d.Place,
		Timezone:    d.Timezone.String(),
		Coordinates: d.Coordinates.Label(),
		LocalTime:   d.LocalTime.String(),
		Current: CurrentView{
			Labels:   CurrentLabels(d.Current),
			IconCode: d.Current.IconCode,
		},
		Forecast: make([]ForecastRow, 0, len(d.Forecast)),
	}
	v.Current.Icon, _ = IconDataURI(d.CurrentIcon)

	for _, row := range d.Forecast {
		labels := ForecastLabels(row.Day)
		icon, _ := IconDataURI(row.Icon)
		v.Forecast = append(v.Forecast, ForecastRow{
			Day:      row.Day.DayLabel,
			Labels:   labels[1:],
			IconCode: row.Day.IconCode,
			Icon:     icon,
		})
	}

	return v
}
