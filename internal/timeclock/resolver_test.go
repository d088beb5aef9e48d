package timeclock_test

import (
	"testing"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

func TestEditBounds(t *testing.T) {
	prev := entry(models.ClockIn, at(9, 0))
	next := entry(models.BreakEnd, at(12, 30))

	b := timeclock.EditBounds(&prev, &next)
	if b.Min == nil || !b.Min.Equal(at(9, 0)) {
		t.Errorf("min = %v, want %v", b.Min, at(9, 0))
	}
	if b.Max == nil || !b.Max.Equal(at(12, 30)) {
		t.Errorf("max = %v, want %v", b.Max, at(12, 30))
	}

	b = timeclock.EditBounds(nil, nil)
	if b.Min != nil || b.Max != nil {
		t.Errorf("bounds with no neighbors = %+v, want unbounded", b)
	}
}

func TestCheckEditTime(t *testing.T) {
	prev := entry(models.BreakStart, at(12, 0))
	next := entry(models.ClockOut, at(17, 0))
	b := timeclock.EditBounds(&prev, &next)

	if err := timeclock.CheckEditTime(at(12, 30), b); err != nil {
		t.Errorf("in-bounds edit rejected: %v", err)
	}
	wantRejected(t, timeclock.CheckEditTime(at(11, 0), b), timeclock.CodeOutOfBounds)
	wantRejected(t, timeclock.CheckEditTime(at(12, 0), b), timeclock.CodeOutOfBounds) // strict
	wantRejected(t, timeclock.CheckEditTime(at(17, 0), b), timeclock.CodeOutOfBounds) // strict
	wantRejected(t, timeclock.CheckEditTime(at(18, 0), b), timeclock.CodeOutOfBounds)
}

func TestCascadeFor(t *testing.T) {
	breakStart := entry(models.BreakStart, at(12, 0))
	breakEnd := entry(models.BreakEnd, at(12, 30))
	othersOut := entry(models.OthersOut, at(15, 0))
	othersIn := entry(models.OthersIn, at(16, 0))
	clockIn := entry(models.ClockIn, at(9, 0))
	clockOut := entry(models.ClockOut, at(17, 0))

	tests := []struct {
		name string
		e    *models.TimeEntry
		prev *models.TimeEntry
		want string
	}{
		{"break-end after break-start", &breakEnd, &breakStart, breakStart.ID},
		{"others-in after others-out", &othersIn, &othersOut, othersOut.ID},
		{"clock-in closing a break", &clockIn, &breakStart, breakStart.ID},
		{"clock-in closing a permission", &clockIn, &othersOut, othersOut.ID},
		{"clock-out never cascades", &clockOut, &clockIn, ""},
		{"orphan break-end", &breakEnd, &clockIn, ""},
		{"orphan others-in", &othersIn, &clockIn, ""},
		{"no predecessor at all", &breakEnd, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeclock.CascadeFor(tt.e, tt.prev); got != tt.want {
				t.Errorf("CascadeFor = %q, want %q", got, tt.want)
			}
		})
	}
}
