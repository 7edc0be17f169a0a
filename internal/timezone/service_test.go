package timezone

import (
	"errors"
	"testing"
)

type mockFinder struct {
	zones map[[2]float64]string
	calls [][2]float64
}

func (m *mockFinder) GetTimezoneName(lng, lat float64) string {
	m.calls = append(m.calls, [2]float64{lng, lat})
	return m.zones[[2]float64{lng, lat}]
}

func TestService_GetTimezone(t *testing.T) {
	finder := &mockFinder{
		zones: map[[2]float64]string{
			{-0.1278, 51.5074}: "Europe/London",
		},
	}
	svc := NewServiceWithFinder(finder)

	tests := []struct {
		name    string
		lat     float64
		lon     float64
		want    string
		wantErr error
	}{
		{"known point", 51.5074, -0.1278, "Europe/London", nil},
		{"open ocean", 0, -140, "", ErrTimezoneUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.lat, tt.lon)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetTimezone() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetTimezone() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %q, want %q", got, tt.want)
			}
		})
	}

	// tzf takes longitude first
	if first := finder.calls[0]; first != [2]float64{-0.1278, 51.5074} {
		t.Errorf("finder called with %v, want lng/lat order", first)
	}
}
