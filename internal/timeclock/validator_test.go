package timeclock_test

import (
	"errors"
	"testing"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

func action(typ models.EntryType, t time.Time) timeclock.Action {
	a := timeclock.Action{UserID: "u1", Type: typ, OccurredAt: t}
	if typ.RequiresDescription() {
		a.Description = "errand"
	}
	return a
}

func wantRejected(t *testing.T, err error, code string) {
	t.Helper()
	var rej *timeclock.RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want a rejection with code %q", err, code)
	}
	if rej.Code != code {
		t.Errorf("rejection code = %q (%s), want %q", rej.Code, rej.Reason, code)
	}
}

func TestValidateFirstClockIn(t *testing.T) {
	store := newFakeStore()
	predID, err := timeclock.Validate(store, action(models.ClockIn, at(9, 0)))
	if err != nil {
		t.Fatalf("clock-in on empty log rejected: %v", err)
	}
	if predID != "" {
		t.Errorf("predecessor id = %q, want empty", predID)
	}
}

func TestValidateDuplicateWindow(t *testing.T) {
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))

	_, err := timeclock.Validate(store, action(models.ClockIn, at(9, 0).Add(5*time.Second)))
	wantRejected(t, err, timeclock.CodeDuplicate)

	// Outside the window the duplicate check passes; the transition
	// check then fires instead.
	_, err = timeclock.Validate(store, action(models.ClockIn, at(9, 1)))
	wantRejected(t, err, timeclock.CodeIllegalTransition)
}

func TestValidateTransitions(t *testing.T) {
	tests := []struct {
		name     string
		seed     []models.EntryType
		typ      models.EntryType
		wantCode string // "" means accepted
	}{
		{"clock-out while out", nil, models.ClockOut, timeclock.CodeIllegalTransition},
		{"clock-out while working", []models.EntryType{models.ClockIn}, models.ClockOut, ""},
		{"clock-in while working", []models.EntryType{models.ClockIn}, models.ClockIn, timeclock.CodeIllegalTransition},
		{"clock-in while on break", []models.EntryType{models.ClockIn, models.BreakStart}, models.ClockIn, ""},
		{"break-start while working", []models.EntryType{models.ClockIn}, models.BreakStart, ""},
		{"break-start while out", nil, models.BreakStart, timeclock.CodeIllegalTransition},
		{"break-start while on break", []models.EntryType{models.ClockIn, models.BreakStart}, models.BreakStart, timeclock.CodeIllegalTransition},
		{"break-end while on break", []models.EntryType{models.ClockIn, models.BreakStart}, models.BreakEnd, ""},
		{"break-end while working", []models.EntryType{models.ClockIn}, models.BreakEnd, timeclock.CodeIllegalTransition},
		{"others-out while working", []models.EntryType{models.ClockIn}, models.OthersOut, ""},
		{"others-out while out", nil, models.OthersOut, timeclock.CodeIllegalTransition},
		{"others-in after others-out", []models.EntryType{models.ClockIn, models.OthersOut}, models.OthersIn, ""},
		{"others-in with no open others-out", []models.EntryType{models.ClockIn}, models.OthersIn, timeclock.CodeIllegalTransition},
		{"others-in after a closed pair", []models.EntryType{models.ClockIn, models.OthersOut, models.OthersIn}, models.OthersIn, timeclock.CodeIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			for i, typ := range tt.seed {
				store.seed("u1", typ, at(9, 0).Add(time.Duration(i)*time.Hour))
			}
			_, err := timeclock.Validate(store, action(tt.typ, at(18, 0)))
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("rejected: %v", err)
				}
				return
			}
			wantRejected(t, err, tt.wantCode)
		})
	}
}

func TestValidateSuccessorCheck(t *testing.T) {
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))
	store.seed("u1", models.ClockOut, at(17, 0))

	// Back-dating a break-end between clock-in and clock-out would put
	// two working-equivalent events side by side.
	_, err := timeclock.Validate(store, timeclock.Action{
		UserID: "u1", Type: models.BreakEnd, OccurredAt: at(12, 0),
	})
	wantRejected(t, err, timeclock.CodeIllegalTransition)

	// A break-start there fails the same way: it alternates against
	// the clock-in but collides with the clock-out after it.
	_, err = timeclock.Validate(store, timeclock.Action{
		UserID: "u1", Type: models.BreakStart, OccurredAt: at(12, 0),
	})
	wantRejected(t, err, timeclock.CodeIllegalTransition)

	// Back-dating past the last event has no successor to collide
	// with.
	_, err = timeclock.Validate(store, timeclock.Action{
		UserID: "u1", Type: models.ClockIn, OccurredAt: at(17, 30),
	})
	if err != nil {
		t.Fatalf("clock-in after the last event rejected: %v", err)
	}
}

func TestValidateTimestampCollision(t *testing.T) {
	// An event at the exact instant of an existing one still counts as
	// that event's immediate predecessor in log order (newest
	// created_at sorts first within a tie), so the alternation check
	// must see it.
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))
	store.seed("u1", models.BreakStart, at(12, 0))

	// others-out shares break-start's equivalence class; landing on the
	// same timestamp would put the two side by side.
	_, err := timeclock.Validate(store, action(models.OthersOut, at(12, 0)))
	wantRejected(t, err, timeclock.CodeIllegalTransition)
}

func TestValidateMissingDescription(t *testing.T) {
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))

	_, err := timeclock.Validate(store, timeclock.Action{
		UserID: "u1", Type: models.OthersOut, OccurredAt: at(11, 0),
	})
	wantRejected(t, err, timeclock.CodeMissingDescription)
}

func TestValidateDuplicateBeatsMissingDescription(t *testing.T) {
	// A double-submitted others-out with an empty note is reported as
	// the duplicate it is, not as a missing reason.
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))
	store.seed("u1", models.OthersOut, at(11, 0))

	_, err := timeclock.Validate(store, timeclock.Action{
		UserID: "u1", Type: models.OthersOut, OccurredAt: at(11, 0).Add(3 * time.Second),
	})
	wantRejected(t, err, timeclock.CodeDuplicate)
}

func TestValidateStoreFailureIsNotRejection(t *testing.T) {
	store := newFakeStore()
	store.failAll = true

	_, err := timeclock.Validate(store, action(models.ClockIn, at(9, 0)))
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if timeclock.IsRejection(err) {
		t.Errorf("store failure classified as rejection: %v", err)
	}
}

func TestValidateAlternationInvariant(t *testing.T) {
	// Whatever sequence of submissions the validator lets through,
	// consecutive relevant events never share an equivalence class.
	store := newFakeStore()
	attempts := []models.EntryType{
		models.ClockIn, models.ClockIn, models.BreakStart, models.BreakStart,
		models.BreakEnd, models.OthersOut, models.OthersIn, models.OthersIn,
		models.ClockOut, models.ClockOut, models.ClockIn, models.BreakEnd,
	}
	when := at(8, 0)
	for _, typ := range attempts {
		when = when.Add(30 * time.Minute)
		a := action(typ, when)
		predID, err := timeclock.Validate(store, a)
		if err != nil {
			continue
		}
		occurred := a.OccurredAt
		_, err = store.Insert(&models.TimeEntry{
			UserID:      a.UserID,
			EntryType:   a.Type,
			OccurredAt:  &occurred,
			Description: a.Description,
		}, predID)
		if err != nil {
			t.Fatalf("conditional insert after successful validation failed: %v", err)
		}
	}

	accepted := store.sorted()
	if len(accepted) < 2 {
		t.Fatalf("expected several accepted events, got %d", len(accepted))
	}
	for i := 1; i < len(accepted); i++ {
		prev, cur := accepted[i-1], accepted[i]
		if prev.EntryType.WorkingEquivalent() == cur.EntryType.WorkingEquivalent() {
			t.Errorf("alternation violated: %s then %s", prev.EntryType, cur.EntryType)
		}
	}
}

func TestCanPerform(t *testing.T) {
	store := newFakeStore()
	store.seed("u1", models.ClockIn, at(9, 0))

	tests := []struct {
		typ  models.EntryType
		want bool
	}{
		{models.ClockIn, false},
		{models.ClockOut, true},
		{models.BreakStart, true},
		{models.BreakEnd, false},
		{models.OthersOut, true},
		{models.OthersIn, false},
	}
	for _, tt := range tests {
		got, err := timeclock.CanPerform(store, "u1", tt.typ, at(12, 0))
		if err != nil {
			t.Fatalf("CanPerform(%s): %v", tt.typ, err)
		}
		if got != tt.want {
			t.Errorf("CanPerform(%s) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
