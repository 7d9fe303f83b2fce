package dateutil

import (
	"testing"
	"time"
)

func TestTodayZeroPadded(t *testing.T) {
	now := time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)
	if got := Today(now); got != "2025-01-05" {
		t.Fatalf("expected 2025-01-05, got %s", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 50, 0, 0, time.Local)
	cases := []struct {
		target string
		want   int
	}{
		{"2025-06-15", 0},
		{"2025-06-16", 1}, // late evening must still count a full day
		{"2025-06-20", 5},
		{"2025-06-14", -1},
		{"2026-06-15", 365},
		{"not-a-date", 0},
	}
	for _, tc := range cases {
		if got := DaysUntil(tc.target, now); got != tc.want {
			t.Errorf("DaysUntil(%q): expected %d, got %d", tc.target, tc.want, got)
		}
	}
}

func TestSundayOnOrBefore(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2023-12-31"}, // Monday -> previous Sunday
		{"2023-12-31", "2023-12-31"}, // Sunday stays put
		{"2024-01-06", "2023-12-31"}, // Saturday
		{"2024-01-07", "2024-01-07"},
	}
	for _, tc := range cases {
		in, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.in, err)
		}
		if got := FormatDate(SundayOnOrBefore(in)); got != tc.want {
			t.Errorf("SundayOnOrBefore(%s): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
