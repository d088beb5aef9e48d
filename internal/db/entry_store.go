package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

// effectiveTime is the ordering key: occurred_at falling back to the
// store-assigned created_at for legacy rows.
const effectiveTime = "COALESCE(occurred_at, created_at)"

// EntryStore is the gorm-backed event store consumed by the timeclock
// engine.
type EntryStore struct {
	db *gorm.DB
}

// NewEntryStore wraps a gorm handle; nil means the package-level DB.
func NewEntryStore(gdb *gorm.DB) *EntryStore {
	if gdb == nil {
		gdb = DB
	}
	return &EntryStore{db: gdb}
}

// first runs the query and maps gorm's not-found onto (nil, nil).
func first(q *gorm.DB) (*models.TimeEntry, error) {
	var e models.TimeEntry
	err := q.First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EntryStore) relevant(gdb *gorm.DB, userID string) *gorm.DB {
	return gdb.Model(&models.TimeEntry{}).
		Where("user_id = ? AND entry_type IN ?", userID, models.RelevantTypes)
}

func (s *EntryStore) LatestRelevantAt(userID string, t time.Time) (*models.TimeEntry, error) {
	return first(s.relevant(s.db, userID).
		Where(effectiveTime+" <= ?", t).
		Order(effectiveTime + " DESC, created_at ASC"))
}

func (s *EntryStore) LatestRelevantBefore(userID string, t time.Time) (*models.TimeEntry, error) {
	return latestRelevantBefore(s.relevant(s.db, userID), t)
}

func latestRelevantBefore(q *gorm.DB, t time.Time) (*models.TimeEntry, error) {
	return first(q.
		Where(effectiveTime+" < ?", t).
		Order(effectiveTime + " DESC, created_at ASC"))
}

// NextRelevant is inclusive at t: a row tied on effective time follows
// a new event there, because the new row's created_at is the newest.
func (s *EntryStore) NextRelevant(userID string, t time.Time) (*models.TimeEntry, error) {
	return first(s.relevant(s.db, userID).
		Where(effectiveTime+" >= ?", t).
		Order(effectiveTime + " ASC, created_at DESC"))
}

func (s *EntryStore) LatestOfType(userID string, typ models.EntryType) (*models.TimeEntry, error) {
	return first(s.db.Model(&models.TimeEntry{}).
		Where("user_id = ? AND entry_type = ?", userID, typ).
		Order(effectiveTime + " DESC, created_at ASC"))
}

func (s *EntryStore) LatestOfTypesBefore(userID string, types []models.EntryType, t time.Time) (*models.TimeEntry, error) {
	return first(s.db.Model(&models.TimeEntry{}).
		Where("user_id = ? AND entry_type IN ?", userID, types).
		Where(effectiveTime+" < ?", t).
		Order(effectiveTime + " DESC, created_at ASC"))
}

func (s *EntryStore) RelevantInRange(userID string, from, to time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := s.relevant(s.db, userID).
		Where(effectiveTime+" >= ? AND "+effectiveTime+" < ?", from, to).
		Order(effectiveTime + " ASC, created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *EntryStore) LastEntry(userID string) (*models.TimeEntry, error) {
	return first(s.db.Model(&models.TimeEntry{}).
		Where("user_id = ?", userID).
		Order(effectiveTime + " DESC, created_at ASC"))
}

func (s *EntryStore) Get(id string) (*models.TimeEntry, error) {
	return first(s.db.Model(&models.TimeEntry{}).Where("id = ?", id))
}

// Neighbors returns the entries directly before and after e in log
// order. Ties on effective time fall back to created_at, newest first.
func (s *EntryStore) Neighbors(e *models.TimeEntry) (prev, next *models.TimeEntry, err error) {
	t := e.EffectiveTime()

	prev, err = first(s.relevant(s.db, e.UserID).
		Where("id <> ?", e.ID).
		Where(effectiveTime+" < ? OR ("+effectiveTime+" = ? AND created_at > ?)", t, t, e.CreatedAt).
		Order(effectiveTime + " DESC, created_at ASC"))
	if err != nil {
		return nil, nil, err
	}

	next, err = first(s.relevant(s.db, e.UserID).
		Where("id <> ?", e.ID).
		Where(effectiveTime+" > ? OR ("+effectiveTime+" = ? AND created_at < ?)", t, t, e.CreatedAt).
		Order(effectiveTime + " ASC, created_at DESC"))
	if err != nil {
		return nil, nil, err
	}

	return prev, next, nil
}

// Insert writes the entry inside a transaction that re-checks the
// predecessor is still the one the caller validated against. Two
// sessions racing the same action cannot both commit an illegal pair.
func (s *EntryStore) Insert(e *models.TimeEntry, expectedPredecessorID string) (*models.TimeEntry, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pred, err := latestRelevantBefore(s.relevant(tx, e.UserID), e.EffectiveTime())
		if err != nil {
			return err
		}
		predID := ""
		if pred != nil {
			predID = pred.ID
		}
		if predID != expectedPredecessorID {
			return timeclock.ErrConcurrentUpdate
		}
		return tx.Create(e).Error
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EntryStore) Update(id string, occurredAt time.Time, description string) error {
	return s.db.Model(&models.TimeEntry{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"occurred_at": occurredAt,
			"description": description,
		}).Error
}

func (s *EntryStore) Delete(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.TimeEntry{}, "id IN ?", ids).Error
}
