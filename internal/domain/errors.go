package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared across services and repositories. Services wrap
// these with fmt.Errorf("...: %w", err); callers match with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEventFull          = errors.New("event has no remaining slots")
	ErrNotRegistered      = errors.New("student is not registered for this event")
	ErrTransactionFailed  = errors.New("transaction could not be committed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateStudent   = errors.New("student already exists")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrNothingToExport    = errors.New("nothing to export")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// EventNotStartedError is returned when attendance is marked for an event
// whose date is still in the future. It carries the event date so callers
// can tell the user when marking becomes possible.
type EventNotStartedError struct {
	EventDate time.Time
}

func (e *EventNotStartedError) Error() string {
	return fmt.Sprintf("event has not started yet (scheduled for %s)", e.EventDate.Format("2006-01-02"))
}
