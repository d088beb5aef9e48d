package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryType identifies one of the six clock events that drive state derivation.
type EntryType string

const (
	ClockIn    EntryType = "clock-in"
	ClockOut   EntryType = "clock-out"
	BreakStart EntryType = "break-start"
	BreakEnd   EntryType = "break-end"
	OthersOut  EntryType = "others-out"
	OthersIn   EntryType = "others-in"
)

// Mode is the user's inferred activity state.
type Mode string

const (
	ModeWorking Mode = "working"
	ModeBreak   Mode = "break"
	ModeOthers  Mode = "others"
	ModeOut     Mode = "out"
)

// RelevantTypes lists every entry type that participates in mode
// derivation, in no particular order.
var RelevantTypes = []EntryType{
	ClockIn, ClockOut, BreakStart, BreakEnd, OthersOut, OthersIn,
}

// modeByType is the fixed event-to-mode mapping. Every relevant type
// must appear here; Valid() guards against new types falling through.
var modeByType = map[EntryType]Mode{
	ClockIn:    ModeWorking,
	ClockOut:   ModeOut,
	BreakStart: ModeBreak,
	BreakEnd:   ModeWorking,
	OthersOut:  ModeOthers,
	OthersIn:   ModeWorking,
}

// labelByType provides the default description for types that don't
// require a user-supplied one.
var labelByType = map[EntryType]string{
	ClockIn:    "Clock in",
	ClockOut:   "Clock out",
	BreakStart: "Break start",
	BreakEnd:   "Break end",
	OthersOut:  "Leave (others)",
	OthersIn:   "Return (others)",
}

// Valid reports whether t is one of the six relevant entry types.
func (t EntryType) Valid() bool {
	_, ok := modeByType[t]
	return ok
}

// Mode returns the activity state an event of this type puts the user in.
func (t EntryType) Mode() Mode {
	return modeByType[t]
}

// WorkingEquivalent reports whether this type starts a working-equivalent
// interval. Consecutive events must alternate between working-equivalent
// and non-working-equivalent types.
func (t EntryType) WorkingEquivalent() bool {
	return modeByType[t] == ModeWorking
}

// RequiresDescription reports whether a user-supplied description is
// mandatory for this type.
func (t EntryType) RequiresDescription() bool {
	return t == OthersIn || t == OthersOut
}

// Label returns the default human-readable description for this type.
func (t EntryType) Label() string {
	return labelByType[t]
}

// TimeEntry is a single timestamped clock event. It is the only
// persisted entity; the user's current state and all aggregates are
// derived by replaying entries ordered by effective time.
type TimeEntry struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string     `gorm:"not null;index:idx_user_occurred" json:"user_id"`
	EntryType   EntryType  `gorm:"not null" json:"entry_type"`
	OccurredAt  *time.Time `gorm:"index:idx_user_occurred" json:"occurred_at"`
	Description string     `json:"description"`
}

// BeforeCreate assigns the store-side id.
func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EffectiveTime returns the authoritative moment of the event:
// OccurredAt when set, otherwise the store-assigned CreatedAt
// (legacy records).
func (e *TimeEntry) EffectiveTime() time.Time {
	if e.OccurredAt != nil {
		return *e.OccurredAt
	}
	return e.CreatedAt
}

// Before reports whether e sorts before other in the canonical log
// order: effective time ascending, CreatedAt descending within ties.
func (e *TimeEntry) Before(other *TimeEntry) bool {
	et, ot := e.EffectiveTime(), other.EffectiveTime()
	if !et.Equal(ot) {
		return et.Before(ot)
	}
	return e.CreatedAt.After(other.CreatedAt)
}
