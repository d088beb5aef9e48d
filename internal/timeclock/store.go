package timeclock

import (
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
)

// Store is the event-store contract the engine consumes. Lookups that
// find nothing return (nil, nil); errors are infrastructure failures.
// All time comparisons are on effective time (occurred_at falling back
// to created_at), with created_at breaking ties.
type Store interface {
	// LatestRelevantAt returns the newest relevant entry with effective
	// time <= t.
	LatestRelevantAt(userID string, t time.Time) (*models.TimeEntry, error)

	// LatestRelevantBefore returns the newest relevant entry strictly
	// before t.
	LatestRelevantBefore(userID string, t time.Time) (*models.TimeEntry, error)

	// NextRelevant returns the entry that would immediately follow a
	// new event at t in log order: the oldest relevant entry with
	// effective time at or after t. An existing entry tied at t counts
	// as the follower, since the new row carries the newest created_at
	// and sorts before it.
	NextRelevant(userID string, t time.Time) (*models.TimeEntry, error)

	// LatestOfType returns the newest entry of exactly the given type.
	LatestOfType(userID string, typ models.EntryType) (*models.TimeEntry, error)

	// LatestOfTypesBefore returns the newest entry of any of the given
	// types strictly before t.
	LatestOfTypesBefore(userID string, types []models.EntryType, t time.Time) (*models.TimeEntry, error)

	// RelevantInRange returns relevant entries with effective time in
	// [from, to), in canonical log order.
	RelevantInRange(userID string, from, to time.Time) ([]models.TimeEntry, error)

	// LastEntry returns the newest entry across the user's whole history.
	LastEntry(userID string) (*models.TimeEntry, error)

	// Get returns the entry with the given id, or (nil, nil).
	Get(id string) (*models.TimeEntry, error)

	// Neighbors returns the entries immediately before and after e in
	// canonical log order; either may be nil.
	Neighbors(e *models.TimeEntry) (prev, next *models.TimeEntry, err error)

	// Insert persists e only if the user's latest relevant entry before
	// e's effective time still has the given id ("" for none). Returns
	// ErrConcurrentUpdate otherwise.
	Insert(e *models.TimeEntry, expectedPredecessorID string) (*models.TimeEntry, error)

	// Update rewrites an entry's occurred-at time and description.
	Update(id string, occurredAt time.Time, description string) error

	// Delete removes the given entries.
	Delete(ids ...string) error
}
