package timeclock_test

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

// fakeStore is an in-memory Store honoring the same ordering contract
// as the SQL implementation: effective time ascending, created_at
// descending within ties.
type fakeStore struct {
	entries []models.TimeEntry

	// failAll simulates an unreachable store.
	failAll bool

	// createdAt stamps inserted rows; advanced by a second per insert
	// so ties stay deterministic.
	createdAt time.Time
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore() *fakeStore {
	return &fakeStore{createdAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)}
}

func (f *fakeStore) sorted() []models.TimeEntry {
	out := make([]models.TimeEntry, len(f.entries))
	copy(out, f.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Before(&out[j])
	})
	return out
}

func relevant(e *models.TimeEntry) bool {
	return e.EntryType.Valid()
}

func (f *fakeStore) LatestRelevantAt(userID string, t time.Time) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var latest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID || !relevant(e) || e.EffectiveTime().After(t) {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) LatestRelevantBefore(userID string, t time.Time) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var latest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID || !relevant(e) || !e.EffectiveTime().Before(t) {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) NextRelevant(userID string, t time.Time) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var earliest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID || !relevant(e) || e.EffectiveTime().Before(t) {
			continue
		}
		if earliest == nil || e.Before(earliest) {
			earliest = e
		}
	}
	return earliest, nil
}

func (f *fakeStore) LatestOfType(userID string, typ models.EntryType) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var latest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID || e.EntryType != typ {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) LatestOfTypesBefore(userID string, types []models.EntryType, t time.Time) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var latest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID || !e.EffectiveTime().Before(t) {
			continue
		}
		match := false
		for _, typ := range types {
			if e.EntryType == typ {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) RelevantInRange(userID string, from, to time.Time) ([]models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var out []models.TimeEntry
	for _, e := range f.sorted() {
		if e.UserID != userID || !relevant(&e) {
			continue
		}
		t := e.EffectiveTime()
		if t.Before(from) || !t.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) LastEntry(userID string) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	var latest *models.TimeEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.UserID != userID {
			continue
		}
		if latest == nil || latest.Before(e) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) Get(id string) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Neighbors(e *models.TimeEntry) (prev, next *models.TimeEntry, err error) {
	if f.failAll {
		return nil, nil, errStoreDown
	}
	sorted := f.sorted()
	idx := -1
	for i := range sorted {
		if sorted[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, nil
	}
	for i := idx - 1; i >= 0; i-- {
		if sorted[i].UserID == e.UserID && relevant(&sorted[i]) {
			p := sorted[i]
			prev = &p
			break
		}
	}
	for i := idx + 1; i < len(sorted); i++ {
		if sorted[i].UserID == e.UserID && relevant(&sorted[i]) {
			n := sorted[i]
			next = &n
			break
		}
	}
	return prev, next, nil
}

func (f *fakeStore) Insert(e *models.TimeEntry, expectedPredecessorID string) (*models.TimeEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	pred, err := f.LatestRelevantBefore(e.UserID, e.EffectiveTime())
	if err != nil {
		return nil, err
	}
	predID := ""
	if pred != nil {
		predID = pred.ID
	}
	if predID != expectedPredecessorID {
		return nil, timeclock.ErrConcurrentUpdate
	}

	saved := *e
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	f.createdAt = f.createdAt.Add(time.Second)
	saved.CreatedAt = f.createdAt
	f.entries = append(f.entries, saved)
	return &saved, nil
}

func (f *fakeStore) Update(id string, occurredAt time.Time, description string) error {
	if f.failAll {
		return errStoreDown
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			t := occurredAt
			f.entries[i].OccurredAt = &t
			f.entries[i].Description = description
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Delete(ids ...string) error {
	if f.failAll {
		return errStoreDown
	}
	keep := f.entries[:0]
	for _, e := range f.entries {
		drop := false
		for _, id := range ids {
			if e.ID == id {
				drop = true
				break
			}
		}
		if !drop {
			keep = append(keep, e)
		}
	}
	f.entries = keep
	return nil
}

// seed appends an entry directly, bypassing validation.
func (f *fakeStore) seed(userID string, typ models.EntryType, at time.Time) *models.TimeEntry {
	t := at
	f.createdAt = f.createdAt.Add(time.Second)
	e := models.TimeEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		EntryType:   typ,
		OccurredAt:  &t,
		Description: typ.Label(),
		CreatedAt:   f.createdAt,
	}
	f.entries = append(f.entries, e)
	return &f.entries[len(f.entries)-1]
}

var _ timeclock.Store = (*fakeStore)(nil)
