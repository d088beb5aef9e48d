package timeclock

import (
	"errors"
	"fmt"
)

// Rejection codes, one per user-correctable failure class.
const (
	CodeDuplicate          = "duplicate"
	CodeIllegalTransition  = "illegal-transition"
	CodeOutOfBounds        = "out-of-bounds"
	CodeMissingDescription = "missing-description"
	CodeNotLast            = "not-last"
	CodeConflict           = "conflict"
)

// RejectionError is a validation refusal: expected, user-correctable,
// and carrying a message meant to be shown as-is. Infrastructure
// failures (store unreachable etc.) are returned as plain errors and
// never as rejections.
type RejectionError struct {
	Code   string
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func reject(code, format string, args ...any) *RejectionError {
	return &RejectionError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ErrConcurrentUpdate is returned when a conditional insert finds the
// log changed between validation and write.
var ErrConcurrentUpdate = &RejectionError{
	Code:   CodeConflict,
	Reason: "the log changed while saving, please retry",
}

// IsRejection reports whether err is a validation rejection rather
// than an infrastructure failure.
func IsRejection(err error) bool {
	var r *RejectionError
	return errors.As(err, &r)
}
