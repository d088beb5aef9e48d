package timeclock

import (
	"sort"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// Status is the derived logical state: what the user is doing and
// since when. Since is zero when no event precedes the asOf instant.
type Status struct {
	Mode  models.Mode
	Since time.Time
}

// CurrentMode derives the user's state at asOf from an event list: the
// relevant event with the greatest effective time <= asOf decides the
// mode, its effective time is Since. No event means clocked out.
// Pure function: same inputs, same result.
func CurrentMode(entries []models.TimeEntry, asOf time.Time) Status {
	var latest *models.TimeEntry
	for i := range entries {
		e := &entries[i]
		if !e.EntryType.Valid() {
			continue
		}
		if e.EffectiveTime().After(asOf) {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	if latest == nil {
		return Status{Mode: models.ModeOut}
	}
	return Status{Mode: latest.EntryType.Mode(), Since: latest.EffectiveTime()}
}

// sortEntries orders entries in canonical log order: effective time
// ascending, created_at descending within ties.
func sortEntries(entries []models.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Before(&entries[j])
	})
}
