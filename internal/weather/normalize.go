package weather

import (
	"time"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

// NormalizeCurrent maps the "current" block. A nil block yields all fields absent.
func NormalizeCurrent(raw *openweathermap.CurrentAPIResponse) CurrentConditions {
	if raw == nil {
		return CurrentConditions{}
	}

	current := CurrentConditions{
		Temperature: types.FloatFrom(raw.Temp),
		Humidity:    types.FloatFrom(raw.Humidity),
		Pressure:    types.FloatFrom(raw.Pressure),
		WindSpeed:   types.FloatFrom(raw.WindSpeed),
	}
	if cond := openweathermap.PrimaryCondition(raw.Weather); cond != nil {
		current.Description = types.StringFrom(cond.Description)
		if cond.Icon != nil {
			current.IconCode = *cond.Icon
		}
	}
	return current
}

// NormalizeDaily maps raw daily entries to ForecastDay records in input order.
// Day labels are weekday names of each entry's timestamp in loc; callers pass time.Local,
// not the queried place's zone. A missing timestamp counts as the Unix epoch.
func NormalizeDaily(raw []openweathermap.DailyAPIResponse, loc *time.Location) []ForecastDay {
	if loc == nil {
		loc = time.Local
	}

	days := make([]ForecastDay, 0, len(raw))
	for _, entry := range raw {
		var ts int64
		if entry.Dt != nil {
			ts = *entry.Dt
		}

		day := ForecastDay{
			DayLabel: dayLabel(ts, loc),
			IconCode: FallbackIconCode,
		}
		if entry.Temp != nil {
			day.MinTemp = types.FloatFrom(entry.Temp.Min)
			day.MaxTemp = types.FloatFrom(entry.Temp.Max)
		}
		if cond := openweathermap.PrimaryCondition(entry.Weather); cond != nil {
			day.Description = types.StringFrom(cond.Description)
			if cond.Icon != nil && *cond.Icon != "" {
				day.IconCode = *cond.Icon
			}
		}

		days = append(days, day)
	}

	return days
}

func dayLabel(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format("Monday")
}
