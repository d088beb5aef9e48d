package timeclock

import (
	"fmt"
	"strings"
	"time"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

// Service is the engine's consumer-facing surface. It holds no derived
// state of its own: every call re-queries the store and recomputes, so
// concurrent sessions against the same store stay consistent.
type Service struct {
	store       Store
	maxInterval time.Duration
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMaxInterval overrides the aggregation sanity ceiling.
func WithMaxInterval(d time.Duration) Option {
	return func(s *Service) { s.maxInterval = d }
}

// NewService wires the engine over an event store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		maxInterval: DefaultMaxInterval,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status returns the user's current mode and since when.
func (s *Service) Status(userID string) (Status, error) {
	now := s.now()
	latest, err := s.store.LatestRelevantAt(userID, now)
	if err != nil {
		return Status{}, fmt.Errorf("failed to load latest entry: %w", err)
	}
	if latest == nil {
		return Status{Mode: models.ModeOut}, nil
	}
	return Status{Mode: latest.EntryType.Mode(), Since: latest.EffectiveTime()}, nil
}

// CanPerform reports whether the given action would currently pass the
// transition check. Used to enable or disable quick-action controls.
func (s *Service) CanPerform(userID string, typ models.EntryType) (bool, error) {
	return CanPerform(s.store, userID, typ, s.now())
}

// SubmitAction validates and records a new entry. A zero occurredAt
// means now. The insert is conditional on the validated predecessor
// still being in place, closing the double-submission race between
// concurrent sessions.
func (s *Service) SubmitAction(userID string, typ models.EntryType, occurredAt time.Time, description string) (*models.TimeEntry, error) {
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	predID, err := Validate(s.store, Action{
		UserID:      userID,
		Type:        typ,
		OccurredAt:  occurredAt,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = typ.Label()
	}

	entry := &models.TimeEntry{
		UserID:      userID,
		EntryType:   typ,
		OccurredAt:  &occurredAt,
		Description: description,
	}
	saved, err := s.store.Insert(entry, predID)
	if err != nil {
		if IsRejection(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return saved, nil
}

// DailyTotals aggregates the calendar day containing date.
func (s *Service) DailyTotals(userID string, date time.Time) (Totals, error) {
	start := timeutil.StartOfDay(date)
	return s.totals(userID, start, start.AddDate(0, 0, 1))
}

// WeeklyTotals aggregates the ISO week (Monday to Sunday) containing date.
func (s *Service) WeeklyTotals(userID string, date time.Time) (Totals, error) {
	start, end := timeutil.WeekWindow(date)
	return s.totals(userID, start, end)
}

// YearlyTotals aggregates the calendar year containing date.
func (s *Service) YearlyTotals(userID string, date time.Time) (Totals, error) {
	start, end := timeutil.YearWindow(date)
	return s.totals(userID, start, end)
}

func (s *Service) totals(userID string, start, end time.Time) (Totals, error) {
	entries, err := s.store.RelevantInRange(userID, start, end)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to load entries: %w", err)
	}
	return Aggregate(entries, start, end, s.now(), s.maxInterval), nil
}

// Entries returns the relevant entries with effective time in
// [from, to), in log order.
func (s *Service) Entries(userID string, from, to time.Time) ([]models.TimeEntry, error) {
	entries, err := s.store.RelevantInRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Entry returns a single entry by id, or nil when it does not exist.
func (s *Service) Entry(id string) (*models.TimeEntry, error) {
	entry, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	return entry, nil
}

// EditEntry moves an entry to a new timestamp and/or rewrites its
// description. The new time must fall strictly between the entry's log
// neighbors, which preserves ordering and the alternation invariant.
func (s *Service) EditEntry(id string, newOccurredAt time.Time, newDescription string) error {
	entry, err := s.store.Get(id)
	if err != nil {
		return fmt.Errorf("failed to load entry: %w", err)
	}
	if entry == nil {
		return reject(CodeOutOfBounds, "entry not found")
	}

	if entry.EntryType.RequiresDescription() && strings.TrimSpace(newDescription) == "" {
		return reject(CodeMissingDescription, "a reason is required for %s", entry.EntryType.Label())
	}
	newDescription = strings.TrimSpace(newDescription)
	if newDescription == "" {
		newDescription = entry.EntryType.Label()
	}

	if newOccurredAt.IsZero() {
		newOccurredAt = entry.EffectiveTime()
	}
	prev, next, err := s.store.Neighbors(entry)
	if err != nil {
		return fmt.Errorf("failed to load neighbors: %w", err)
	}
	if err := CheckEditTime(newOccurredAt, EditBounds(prev, next)); err != nil {
		return err
	}

	if err := s.store.Update(id, newOccurredAt, newDescription); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return nil
}

// DeleteEntry removes an entry. Only the most recent entry in the
// user's whole history may be deleted; when it closes a break or a
// permission, the matching opening event is deleted with it and its id
// is returned.
func (s *Service) DeleteEntry(id string) (cascadedID string, err error) {
	entry, err := s.store.Get(id)
	if err != nil {
		return "", fmt.Errorf("failed to load entry: %w", err)
	}
	if entry == nil {
		return "", reject(CodeNotLast, "entry not found")
	}

	last, err := s.store.LastEntry(entry.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to load latest entry: %w", err)
	}
	if last == nil || last.ID != entry.ID {
		return "", reject(CodeNotLast, "only the most recent entry can be deleted")
	}

	prev, _, err := s.store.Neighbors(entry)
	if err != nil {
		return "", fmt.Errorf("failed to load neighbors: %w", err)
	}
	cascadedID = CascadeFor(entry, prev)

	ids := []string{entry.ID}
	if cascadedID != "" {
		ids = append(ids, cascadedID)
	}
	if err := s.store.Delete(ids...); err != nil {
		return "", fmt.Errorf("failed to delete: %w", err)
	}
	return cascadedID, nil
}
