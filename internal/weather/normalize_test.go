package weather

import (
	"encoding/json"
	"testing"
	"time"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNormalizeCurrent(t *testing.T) {
	tests := []struct {
		name     string
		input    *openweathermap.CurrentAPIResponse
		expected CurrentConditions
	}{
		{
			name: "all fields present",
			input: &openweathermap.CurrentAPIResponse{
				Temp:      ptr(15.2),
				Humidity:  ptr(70.0),
				Pressure:  ptr(1012.0),
				WindSpeed: ptr(3.6),
				Weather:   []openweathermap.Condition{{Description: ptr("clear sky"), Icon: ptr("01d")}},
			},
			expected: CurrentConditions{
				Temperature: types.SomeFloat(15.2),
				Humidity:    types.SomeFloat(70),
				Pressure:    types.SomeFloat(1012),
				WindSpeed:   types.SomeFloat(3.6),
				Description: types.SomeString("clear sky"),
				IconCode:    "01d",
			},
		},
		{
			name: "missing numeric readings",
			input: &openweathermap.CurrentAPIResponse{
				Temp:    ptr(0.0),
				Weather: []openweathermap.Condition{{Icon: ptr("04n")}},
			},
			expected: CurrentConditions{
				Temperature: types.SomeFloat(0),
				IconCode:    "04n",
			},
		},
		{
			name:     "empty weather array",
			input:    &openweathermap.CurrentAPIResponse{Humidity: ptr(55.0)},
			expected: CurrentConditions{Humidity: types.SomeFloat(55)},
		},
		{
			name:     "no current block",
			input:    nil,
			expected: CurrentConditions{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCurrent(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeCurrent() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNormalizeCurrent_MissingRendersSentinel(t *testing.T) {
	got := NormalizeCurrent(&openweathermap.CurrentAPIResponse{})
	for name, field := range map[string]string{
		"temperature": got.Temperature.String(),
		"humidity":    got.Humidity.String(),
		"pressure":    got.Pressure.String(),
		"wind speed":  got.WindSpeed.String(),
		"description": got.Description.String(),
	} {
		if field != types.NotAvailable {
			t.Errorf("%s = %q, want %q", name, field, types.NotAvailable)
		}
	}
}

func TestNormalizeDaily(t *testing.T) {
	raw := []openweathermap.DailyAPIResponse{
		{
			Dt:      ptr(int64(1700000000)), // Tuesday 2023-11-14 UTC
			Temp:    &openweathermap.DailyTemp{Min: ptr(10.0), Max: ptr(16.0)},
			Weather: []openweathermap.Condition{{Description: ptr("clear sky"), Icon: ptr("01d")}},
		},
		{
			Dt:      ptr(int64(1700086400)), // Wednesday
			Temp:    &openweathermap.DailyTemp{Min: ptr(9.5)},
			Weather: []openweathermap.Condition{{Description: ptr("light rain")}},
		},
		{
			Dt:      ptr(int64(1700172800)), // Thursday
			Weather: []openweathermap.Condition{{Icon: ptr("")}},
		},
		{
			// no timestamp, no temp, no weather
		},
	}

	got := NormalizeDaily(raw, time.UTC)

	expected := []ForecastDay{
		{DayLabel: "Tuesday", MinTemp: types.SomeFloat(10), MaxTemp: types.SomeFloat(16), Description: types.SomeString("clear sky"), IconCode: "01d"},
		{DayLabel: "Wednesday", MinTemp: types.SomeFloat(9.5), Description: types.SomeString("light rain"), IconCode: FallbackIconCode},
		{DayLabel: "Thursday", IconCode: FallbackIconCode},
		{DayLabel: "Thursday", IconCode: FallbackIconCode}, // 1970-01-01
	}

	if len(got) != len(expected) {
		t.Fatalf("NormalizeDaily() returned %d days, want %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("day %d = %+v, want %+v", i, got[i], expected[i])
		}
	}

	if got[2].Description.String() != types.NotAvailable {
		t.Errorf("missing description = %q, want %q", got[2].Description.String(), types.NotAvailable)
	}
	if got[1].MaxTemp.String() != types.NotAvailable {
		t.Errorf("missing max temp = %q, want %q", got[1].MaxTemp.String(), types.NotAvailable)
	}
}

func TestNormalizeDaily_UsesGivenLocation(t *testing.T) {
	// 23:30 UTC on a Tuesday is already Wednesday in Tokyo
	ts := time.Date(2023, 11, 14, 23, 30, 0, 0, time.UTC).Unix()
	raw := []openweathermap.DailyAPIResponse{{Dt: &ts}}

	tokyo := time.FixedZone("JST", 9*60*60)

	if got := NormalizeDaily(raw, time.UTC)[0].DayLabel; got != "Tuesday" {
		t.Errorf("UTC label = %q, want Tuesday", got)
	}
	if got := NormalizeDaily(raw, tokyo)[0].DayLabel; got != "Wednesday" {
		t.Errorf("JST label = %q, want Wednesday", got)
	}
}

func TestNormalizeDaily_Empty(t *testing.T) {
	got := NormalizeDaily(nil, time.UTC)
	if got == nil || len(got) != 0 {
		t.Fatalf("NormalizeDaily(nil) = %#v, want empty non-nil slice", got)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(empty) = %s, want []", data)
	}
}

func TestForecastDay_JSONKeys(t *testing.T) {
	day := ForecastDay{DayLabel: "Monday", MinTemp: types.SomeFloat(10), Description: types.SomeString("clear sky"), IconCode: "01d"}

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"date":"Monday","min_temp":10,"max_temp":"N/A","weather_desc":"clear sky","weather_icon":"01d"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
