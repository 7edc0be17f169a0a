package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"skycast/internal/lookup"
	"skycast/internal/weather"
)

// CurrentLabels returns the current-conditions labels in display order
func CurrentLabels(c weather.CurrentConditions) []string {
	return []string{
		fmt.Sprintf("Temperature: %s°C", c.Temperature),
		fmt.Sprintf("Humidity: %s%%", c.Humidity),
		fmt.Sprintf("Pressure: %s hPa", c.Pressure),
		fmt.Sprintf("Wind Speed: %s m/s", c.WindSpeed),
		fmt.Sprintf("Description: %s", c.Description),
	}
}

// ForecastLabels returns the labels of one forecast day, day name first
func ForecastLabels(day weather.ForecastDay) []string {
	return []string{
		day.DayLabel,
		fmt.Sprintf("Min Temp: %s°C", day.MinTemp),
		fmt.Sprintf("Max Temp: %s°C", day.MaxTemp),
		fmt.Sprintf("Weather: %s", day.Description),
	}
}

// IconPlaceholder describes an icon slot in text output
func IconPlaceholder(code string, img image.Image) string {
	if img == nil {
		return "[no icon]"
	}
	b := img.Bounds()
	return fmt.Sprintf("[icon %s %dx%d]", code, b.Dx(), b.Dy())
}

// Lines renders the display state as plain text, one label per line
func Lines(d *lookup.Display) []string {
	if d == nil {
		return nil
	}

	lines := []string{
		fmt.Sprintf("City: %s", d.Query),
	}
	if d.Place != "" {
		lines = append(lines, fmt.Sprintf("Place: %s", d.Place))
	}
	lines = append(lines,
		fmt.Sprintf("Timezone: %s", d.Timezone),
		fmt.Sprintf("Coordinates: %s", d.Coordinates.Label()),
		fmt.Sprintf("Local Time: %s", d.LocalTime),
		"",
		IconPlaceholder(d.Current.IconCode, d.CurrentIcon),
	)
	lines = append(lines, CurrentLabels(d.Current)...)

	for _, row := range d.Forecast {
		lines = append(lines, "")
		labels := ForecastLabels(row.Day)
		lines = append(lines, labels[0], IconPlaceholder(row.Day.IconCode, row.Icon))
		lines = append(lines, labels[1:]...)
	}

	return lines
}

// IconDataURI encodes img as a base64 PNG data URI. A nil image yields "".
func IconDataURI(img image.Image) (string, error) {
	if img == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode icon: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
