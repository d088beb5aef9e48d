package timeclock

import (
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// Bounds are the legal timestamp limits for editing an event, taken
// from its log neighbors. A nil limit means unbounded on that side.
type Bounds struct {
	Min *time.Time
	Max *time.Time
}

// EditBounds computes the strict timestamp bounds imposed by the
// neighboring events; either neighbor may be nil.
func EditBounds(prev, next *models.TimeEntry) Bounds {
	var b Bounds
	if prev != nil {
		t := prev.EffectiveTime()
		b.Min = &t
	}
	if next != nil {
		t := next.EffectiveTime()
		b.Max = &t
	}
	return b
}

// CheckEditTime rejects a proposed timestamp that does not fall
// strictly between the neighbor bounds, naming the violated neighbor.
func CheckEditTime(newTime time.Time, b Bounds) error {
	if b.Min != nil && !newTime.After(*b.Min) {
		return reject(CodeOutOfBounds, "must be after the previous event at %s",
			b.Min.Format("2006-01-02 15:04"))
	}
	if b.Max != nil && !newTime.Before(*b.Max) {
		return reject(CodeOutOfBounds, "must be before the next event at %s",
			b.Max.Format("2006-01-02 15:04"))
	}
	return nil
}

// openerFor maps a closing entry type to the opening types it pairs
// with. A clock-in also closes a break or a permission when it
// immediately follows one.
var openerFor = map[models.EntryType][]models.EntryType{
	models.BreakEnd: {models.BreakStart},
	models.OthersIn: {models.OthersOut},
	models.ClockIn:  {models.BreakStart, models.OthersOut},
}

// CascadeFor returns the id of the opening event that must be deleted
// together with e, or "" when e needs no cascade. An orphaned closer
// (no matching opener in front of it) deletes alone.
func CascadeFor(e, prev *models.TimeEntry) string {
	if e == nil || prev == nil {
		return ""
	}
	for _, opener := range openerFor[e.EntryType] {
		if prev.EntryType == opener {
			return prev.ID
		}
	}
	return ""
}
