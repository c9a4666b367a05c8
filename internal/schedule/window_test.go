package schedule

import (
	"testing"
	"time"
)

func TestWindowBuilders(t *testing.T) {
	loc := chicago(t)
	anchor := time.Date(2025, 10, 30, 14, 37, 0, 0, loc)

	day := DayWindow(anchor)
	if day.Start.Format(ISO8601) != "2025-10-30T06:00:00-05:00" ||
		day.End.Format(ISO8601) != "2025-10-30T18:00:00-05:00" {
		t.Fatalf("unexpected day window: %v", day)
	}

	night := NightWindow(anchor)
	if night.Start.Format(ISO8601) != "2025-10-30T18:00:00-05:00" ||
		night.End.Format(ISO8601) != "2025-10-31T06:00:00-05:00" {
		t.Fatalf("unexpected night window: %v", night)
	}

	full := FullDayWindow(anchor)
	if full.Start.Format(ISO8601) != "2025-10-30T06:00:00-05:00" ||
		full.End.Format(ISO8601) != "2025-10-31T06:00:00-05:00" {
		t.Fatalf("unexpected full-day window: %v", full)
	}

	for _, w := range []Window{day, night, full} {
		if !w.Start.Before(w.End) {
			t.Fatalf("window start not before end: %v", w)
		}
	}
}

func TestWindowBuildersCrossMonthEnd(t *testing.T) {
	loc := chicago(t)
	anchor := time.Date(2025, 10, 31, 20, 0, 0, 0, loc)

	night := NightWindow(anchor)
	if night.End.Format(ISO8601) != "2025-11-01T06:00:00-05:00" {
		t.Fatalf("unexpected night window end: %s", night.End.Format(ISO8601))
	}
}

func TestSelectWindowNoonThreshold(t *testing.T) {
	loc := chicago(t)

	morning := time.Date(2025, 10, 30, 11, 59, 0, 0, loc)
	if w := SelectWindow(morning); w != DayWindow(morning) {
		t.Fatalf("expected day window before noon, got %v", w)
	}

	noon := time.Date(2025, 10, 30, 12, 0, 0, 0, loc)
	if w := SelectWindow(noon); w != NightWindow(noon) {
		t.Fatalf("expected night window from noon on, got %v", w)
	}

	// The night window always looks forward: an 11pm invocation still
	// anchors at today's date.
	late := time.Date(2025, 10, 30, 23, 0, 0, 0, loc)
	if w := SelectWindow(late); w.Start.Day() != 30 || w.End.Day() != 31 {
		t.Fatalf("expected 10/30 18:00 -> 10/31 06:00, got %v", w)
	}
}
