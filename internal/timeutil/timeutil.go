package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekWindow returns the half-open ISO week window [Monday 00:00, next
// Monday 00:00) containing t.
func WeekWindow(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	return monday, monday.AddDate(0, 0, 7)
}

// YearWindow returns the half-open calendar year window containing t.
func YearWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(1, 0, 0)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatHoursMinutes formats a duration like "7h 30m" or "45m".
func FormatHoursMinutes(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Minutes())
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock formats a duration as HH:MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ParseDayTime combines a "2006-01-02" date and a "15:04" time of day
// into a local wall-clock instant. An empty date means today relative
// to ref.
func ParseDayTime(date, clock string, ref time.Time) (time.Time, error) {
	day := ref
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, ref.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
		}
		day = parsed
	}
	tod, err := time.ParseInLocation("15:04", clock, ref.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), 0, 0, ref.Location()), nil
}
