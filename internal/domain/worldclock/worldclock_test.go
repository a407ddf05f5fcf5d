package worldclock

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rohitk523/adk-project/internal/types"
)

func TestCurrentTime(t *testing.T) {
	orig := Now
	Now = func() time.Time {
		return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { Now = orig })

	got, err := CurrentTime("  New York ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12:00 UTC is 08:00 in New York during DST.
	if !strings.Contains(got, "2026-08-23 08:00:00") {
		t.Fatalf("unexpected time report: %q", got)
	}
	if !strings.Contains(got, "New York") {
		t.Fatalf("expected city name in report: %q", got)
	}
}

func TestCurrentTime_UnknownCity(t *testing.T) {
	_, err := CurrentTime("atlantis")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWeather(t *testing.T) {
	got, err := Weather("london")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "London") {
		t.Fatalf("unexpected weather report: %q", got)
	}
	if _, err := Weather("atlantis"); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCitiesSorted(t *testing.T) {
	cs := Cities()
	if len(cs) == 0 {
		t.Fatalf("expected known cities")
	}
	for i := 1; i < len(cs); i++ {
		if cs[i-1] >= cs[i] {
			t.Fatalf("cities not sorted: %v", cs)
		}
	}
}
