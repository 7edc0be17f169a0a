package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

type mockOneCallProvider struct {
	response *openweathermap.OneCallAPIResponse
	err      error
	lat, lon float64
}

func (m *mockOneCallProvider) GetOneCall(ctx context.Context, latitude, longitude float64) (*openweathermap.OneCallAPIResponse, error) {
	m.lat, m.lon = latitude, longitude
	return m.response, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWeatherService_GetWeather(t *testing.T) {
	provider := &mockOneCallProvider{
		response: &openweathermap.OneCallAPIResponse{
			Current: &openweathermap.CurrentAPIResponse{
				Temp:     ptr(15.2),
				Humidity: ptr(70.0),
				Weather:  []openweathermap.Condition{{Description: ptr("clear sky"), Icon: ptr("01d")}},
			},
			Daily: []openweathermap.DailyAPIResponse{
				{Dt: ptr(int64(1700000000))},
				{Dt: ptr(int64(1700086400))},
			},
		},
	}
	svc := NewWeatherServiceWithProvider(provider, discardLogger())

	report, err := svc.GetWeather(t.Context(), types.NewCoords(51.5074, -0.1278))
	if err != nil {
		t.Fatalf("GetWeather() unexpected error = %v", err)
	}

	if provider.lat != 51.5074 || provider.lon != -0.1278 {
		t.Errorf("provider called with (%v, %v)", provider.lat, provider.lon)
	}
	if report.Current.Temperature != types.SomeFloat(15.2) {
		t.Errorf("Temperature = %+v", report.Current.Temperature)
	}
	if report.Current.Pressure.Valid {
		t.Errorf("Pressure = %+v, want absent", report.Current.Pressure)
	}
	if len(report.Daily) != 2 {
		t.Errorf("len(Daily) = %d, want 2", len(report.Daily))
	}
}

func TestWeatherService_GetWeather_Failure(t *testing.T) {
	cause := errors.New("fetch returned status 500: internal error")
	svc := NewWeatherServiceWithProvider(&mockOneCallProvider{err: cause}, discardLogger())

	report, err := svc.GetWeather(t.Context(), types.NewCoords(1, 2))
	if report != nil {
		t.Errorf("GetWeather() report = %+v, want nil", report)
	}
	if !errors.Is(err, ErrWeatherFetchFailed) {
		t.Fatalf("GetWeather() error = %v, want ErrWeatherFetchFailed", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("GetWeather() error does not wrap the cause")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("GetWeather() error is not a *FetchError")
	}
	if !strings.Contains(fetchErr.Error(), "status 500") {
		t.Errorf("FetchError message = %q", fetchErr.Error())
	}
}
