package timeclock

import (
	"strings"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// DuplicateWindow is the debounce window against double-submission of
// the same entry type.
const DuplicateWindow = 10 * time.Second

// Action is a candidate entry to be checked against the log.
type Action struct {
	UserID      string
	Type        models.EntryType
	OccurredAt  time.Time
	Description string
}

// modeLabel is how a mode reads inside rejection messages.
var modeLabel = map[models.Mode]string{
	models.ModeWorking: "working",
	models.ModeBreak:   "on a break",
	models.ModeOthers:  "out on a permission",
	models.ModeOut:     "clocked out",
}

// Validate decides whether the action is legal given the current log.
// Checks run in order: duplicate debounce, description, predecessor
// transition, successor alternation. On success it returns the id of
// the relevant predecessor ("" for none) so the caller can perform a
// conditional insert against it. The store is never mutated here.
func Validate(store Store, a Action) (predecessorID string, err error) {
	if !a.Type.Valid() {
		return "", reject(CodeIllegalTransition, "unknown entry type %q", string(a.Type))
	}

	// Debounce: same type within the duplicate window. A double-submit
	// reads as a duplicate even when its other fields are bad too.
	dup, err := store.LatestOfType(a.UserID, a.Type)
	if err != nil {
		return "", err
	}
	if dup != nil {
		gap := a.OccurredAt.Sub(dup.EffectiveTime())
		if gap < 0 {
			gap = -gap
		}
		if gap <= DuplicateWindow {
			return "", reject(CodeDuplicate, "%s already recorded at %s",
				a.Type.Label(), dup.EffectiveTime().Format("15:04:05"))
		}
	}

	if a.Type.RequiresDescription() && strings.TrimSpace(a.Description) == "" {
		return "", reject(CodeMissingDescription, "a reason is required for %s", a.Type.Label())
	}

	pred, err := store.LatestRelevantBefore(a.UserID, a.OccurredAt)
	if err != nil {
		return "", err
	}
	predMode := models.ModeOut
	if pred != nil {
		predMode = pred.EntryType.Mode()
		predecessorID = pred.ID
	}
	if err := checkTransition(store, a, predMode); err != nil {
		return "", err
	}

	// Back-dated inserts must also alternate against the event that
	// follows them. An existing event at the exact same instant is the
	// follower: the new row has the newest created_at, so it sorts
	// first within the tie.
	next, err := store.NextRelevant(a.UserID, a.OccurredAt)
	if err != nil {
		return "", err
	}
	if next != nil && next.EntryType.WorkingEquivalent() == a.Type.WorkingEquivalent() {
		return "", reject(CodeIllegalTransition, "conflicts with %s at %s",
			next.EntryType.Label(), next.EffectiveTime().Format("15:04:05"))
	}

	return predecessorID, nil
}

// checkTransition applies the per-type legality table against the mode
// in effect just before the action.
func checkTransition(store Store, a Action, predMode models.Mode) error {
	switch a.Type {
	case models.ClockIn:
		if predMode == models.ModeWorking {
			return reject(CodeIllegalTransition, "already working")
		}
	case models.ClockOut:
		if predMode != models.ModeWorking {
			return reject(CodeIllegalTransition, "cannot clock out while %s", modeLabel[predMode])
		}
	case models.BreakStart:
		if predMode != models.ModeWorking {
			return reject(CodeIllegalTransition, "cannot start a break while %s", modeLabel[predMode])
		}
	case models.BreakEnd:
		if predMode != models.ModeBreak {
			return reject(CodeIllegalTransition, "no break in progress")
		}
	case models.OthersOut:
		if predMode != models.ModeWorking {
			return reject(CodeIllegalTransition, "cannot leave while %s", modeLabel[predMode])
		}
	case models.OthersIn:
		// Returning from a permission only pairs with an open
		// others-out, independent of the general mode.
		last, err := store.LatestOfTypesBefore(a.UserID,
			[]models.EntryType{models.OthersOut, models.OthersIn}, a.OccurredAt)
		if err != nil {
			return err
		}
		if last == nil || last.EntryType != models.OthersOut {
			return reject(CodeIllegalTransition, "no open permission to return from")
		}
	}
	return nil
}

// CanPerform reports whether typ would pass the predecessor transition
// check right now. It drives enabling/disabling quick-action controls;
// the full Validate still runs at submission time.
func CanPerform(store Store, userID string, typ models.EntryType, now time.Time) (bool, error) {
	pred, err := store.LatestRelevantBefore(userID, now)
	if err != nil {
		return false, err
	}
	predMode := models.ModeOut
	if pred != nil {
		predMode = pred.EntryType.Mode()
	}
	err = checkTransition(store, Action{UserID: userID, Type: typ, OccurredAt: now}, predMode)
	if err == nil {
		return true, nil
	}
	if IsRejection(err) {
		return false, nil
	}
	return false, err
}
