package timeutil_test

import (
	"testing"
	"time"

	"github.com/timeflowhq/timeflow/internal/timeutil"
)

func TestWeekWindow(t *testing.T) {
	// 2026-08-28 is a Friday.
	fri := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	start, end := timeutil.WeekWindow(fri)

	wantStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// Sunday belongs to the same week, not the next one.
	sun := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	start, _ = timeutil.WeekWindow(sun)
	if !start.Equal(wantStart) {
		t.Errorf("sunday week start = %v, want %v", start, wantStart)
	}
}

func TestYearWindow(t *testing.T) {
	d := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	start, end := timeutil.YearWindow(d)
	if !start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{time.Hour, "1h 00m"},
		{7*time.Hour + 30*time.Minute, "7h 30m"},
		{-time.Minute, "0m"},
	}
	for _, tt := range tests {
		if got := timeutil.FormatHoursMinutes(tt.d); got != tt.want {
			t.Errorf("FormatHoursMinutes(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
	}
	for _, tt := range tests {
		if got := timeutil.FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseDayTime(t *testing.T) {
	ref := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	got, err := timeutil.ParseDayTime("", "08:30", ref)
	if err != nil {
		t.Fatalf("ParseDayTime: %v", err)
	}
	want := time.Date(2026, 8, 28, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = timeutil.ParseDayTime("2026-08-01", "23:15", ref)
	if err != nil {
		t.Fatalf("ParseDayTime: %v", err)
	}
	want = time.Date(2026, 8, 1, 23, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := timeutil.ParseDayTime("28/08/2026", "08:00", ref); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := timeutil.ParseDayTime("", "8am", ref); err == nil {
		t.Error("expected error for malformed time")
	}
}
