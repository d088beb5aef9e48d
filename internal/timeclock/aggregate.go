package timeclock

import (
	"math"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// DefaultMaxInterval is the sanity ceiling for a single interval.
// Anything longer is treated as a forgotten closing event and excluded
// from accumulation.
const DefaultMaxInterval = 16 * time.Hour

// Totals holds accumulated time per mode inside a window. Free is the
// window remainder not covered by the three tracked buckets.
type Totals struct {
	Working time.Duration
	Break   time.Duration
	Others  time.Duration
	Free    time.Duration

	// Window is the full window length, for percentage rendering.
	Window time.Duration
}

// Percent returns bucket as a rounded share of the window.
func (t Totals) Percent(bucket time.Duration) int {
	if t.Window <= 0 {
		return 0
	}
	return int(math.Round(float64(bucket) / float64(t.Window) * 100))
}

// Aggregate replays entries over [windowStart, windowEnd) and
// accumulates elapsed time per mode. The cursor starts at windowStart
// in the out state; each event closes the interval since the cursor
// and switches the mode. An open final interval extends to now when
// the window covers it, otherwise to the window end. Intervals longer
// than maxInterval (0 means DefaultMaxInterval) are dropped as
// operator error.
func Aggregate(entries []models.TimeEntry, windowStart, windowEnd, now time.Time, maxInterval time.Duration) Totals {
	if maxInterval <= 0 {
		maxInterval = DefaultMaxInterval
	}

	sorted := make([]models.TimeEntry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	totals := Totals{Window: windowEnd.Sub(windowStart)}
	cursorTime := windowStart
	cursorMode := models.ModeOut

	accumulate := func(until time.Time) {
		delta := until.Sub(cursorTime)
		if delta <= 0 || delta > maxInterval {
			return
		}
		switch cursorMode {
		case models.ModeWorking:
			totals.Working += delta
		case models.ModeBreak:
			totals.Break += delta
		case models.ModeOthers:
			totals.Others += delta
		}
	}

	for i := range sorted {
		e := &sorted[i]
		if !e.EntryType.Valid() {
			continue
		}
		t := e.EffectiveTime()
		if t.Before(windowStart) {
			// Carried-in event: adjusts the mode, contributes no time.
			cursorMode = e.EntryType.Mode()
			continue
		}
		if !t.Before(windowEnd) {
			break
		}
		accumulate(t)
		cursorMode = e.EntryType.Mode()
		cursorTime = t
	}

	end := windowEnd
	if !now.Before(windowStart) && now.Before(windowEnd) {
		end = now
	}
	accumulate(end)

	free := totals.Window - totals.Working - totals.Break - totals.Others
	if free < 0 {
		free = 0
	}
	totals.Free = free
	return totals
}
