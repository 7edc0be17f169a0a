package main

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skycast/internal/location"
	"skycast/internal/lookup"
	"skycast/internal/render"
	"skycast/internal/types"
	"skycast/internal/weather"
)

type mockLookup struct {
	display *lookup.Display
	err     error
	city    string
}

func (m *mockLookup) Run(ctx context.Context, city string) (*lookup.Display, error) {
	m.city = city
	return m.display, m.err
}

func (m *mockLookup) State() lookup.State {
	return lookup.StateIdle
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleGetWeather(t *testing.T) {
	display := &lookup.Display{
		RunID:       "run-1",
		Query:       "London",
		Timezone:    types.SomeString("Europe/London"),
		Coordinates: types.NewCoords(51.5074, -0.1278),
		LocalTime:   types.SomeString("2023-11-14 12:00:00"),
		Current:     weather.CurrentConditions{Temperature: types.SomeFloat(15.2), IconCode: "01d"},
		CurrentIcon: image.NewRGBA(image.Rect(0, 0, 2, 2)),
		Forecast: []lookup.ForecastRow{
			{Day: weather.ForecastDay{DayLabel: "Tuesday", IconCode: "01d"}},
		},
	}

	tests := []struct {
		name           string
		query          string
		display        *lookup.Display
		err            error
		expectedStatus int
	}{
		{"success", "?city=London", display, nil, http.StatusOK},
		{"missing city", "", nil, nil, http.StatusUnprocessableEntity},
		{"city not found", "?city=Qwxyzzy123", nil, location.ErrLocationNotFound, http.StatusNotFound},
		{"busy", "?city=London", nil, lookup.ErrLookupInProgress, http.StatusConflict},
		{"weather fetch failed", "?city=London", nil, &weather.FetchError{Cause: errors.New("status 500")}, http.StatusBadGateway},
		{"other failure", "?city=London", nil, errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockLookup{display: tt.display, err: tt.err}
			app := NewApp(mock, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/weather"+tt.query, nil)
			rec := httptest.NewRecorder()
			app.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if mock.city != "London" {
				t.Errorf("lookup called with %q", mock.city)
			}
			var view render.View
			if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if view.Coordinates != "51.5074°N, -0.1278°E" || view.Timezone != "Europe/London" {
				t.Errorf("view = %+v", view)
			}
			if !strings.HasPrefix(view.Current.Icon, "data:image/png;base64,") {
				t.Errorf("current icon = %q", view.Current.Icon)
			}
			if len(view.Forecast) != 1 || view.Forecast[0].Icon != "" {
				t.Errorf("forecast = %+v", view.Forecast)
			}
		})
	}
}

func TestHandlePing(t *testing.T) {
	app := NewApp(&mockLookup{}, discardLogger())

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"state":"Idle"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleGetWeather_FetchErrorHidesCause(t *testing.T) {
	cause := errors.New(`failed to fetch: Get "http://127.0.0.1:1?appid=SUPERSECRETKEY": connection refused`)
	app := NewApp(&mockLookup{err: &weather.FetchError{Cause: cause}}, discardLogger())

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather?city=London", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	body := rec.Body.String()
	if strings.Contains(body, "SUPERSECRETKEY") || strings.Contains(body, "appid") {
		t.Errorf("502 body exposes the upstream error: %s", body)
	}
	if !strings.Contains(body, "Failed to fetch weather data") {
		t.Errorf("body = %s", body)
	}
}
