//go:build integration

package timezone

import "testing"

func TestService_GetTimezone_Integration(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	tz, err := svc.GetTimezone(51.5074, -0.1278)
	if err != nil {
		t.Fatalf("GetTimezone() error = %v", err)
	}
	if tz != "Europe/London" {
		t.Errorf("GetTimezone() = %q, want Europe/London", tz)
	}
}
