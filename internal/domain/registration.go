package domain

import (
	"context"
	"time"
)

// Registration represents a student's slot-consuming commitment to attend
// an event. The (EventID, StudentID) pair is unique.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	StudentID    string    `json:"student_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AdmitOutcome is the result of a single admission transaction.
type AdmitOutcome int

const (
	// AdmitAdmitted means a new registration row was committed.
	AdmitAdmitted AdmitOutcome = iota
	// AdmitAlreadyRegistered means the student already holds a registration;
	// no row was written.
	AdmitAlreadyRegistered
	// AdmitEventNotFound means the event row does not exist.
	AdmitEventNotFound
	// AdmitStudentNotFound means the student row does not exist.
	AdmitStudentNotFound
	// AdmitCapacityExceeded means the event has no remaining slots.
	AdmitCapacityExceeded
)

// RosterEntry is one row of an event's registration roster.
// swagger:model RosterEntry
type RosterEntry struct {
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegistrationRepository defines storage operations for registrations.
//
// Admit runs the full admission sequence in one transaction, taking a
// serializing read on the event row before counting so that concurrent
// admissions for the same event cannot both observe stale headroom. On
// AdmitAdmitted or AdmitAlreadyRegistered the returned registration is
// populated. A commit or serialization failure is returned as a non-nil
// error with an undefined outcome.
type RegistrationRepository interface {
	Admit(ctx context.Context, eventID, studentID string, now time.Time) (AdmitOutcome, *Registration, error)
	// Cancel deletes the attendance row (if any) and then the registration
	// row for the key, in one transaction. Deleting a nonexistent
	// registration is not an error.
	Cancel(ctx context.Context, eventID, studentID string) error
	GetByEventAndStudent(ctx context.Context, eventID, studentID string) (*Registration, error)
	ListRoster(ctx context.Context, eventID string) ([]*RosterEntry, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
}

// RegistrationService defines the caller-facing registration workflow.
type RegistrationService interface {
	// Register admits the student within the event's capacity. created is
	// true when a new registration was committed, false when the student was
	// already registered (an informational no-op, not an error).
	Register(ctx context.Context, eventID, studentID string) (reg *Registration, created bool, err error)
	// Cancel removes the registration and any attendance record. Idempotent.
	Cancel(ctx context.Context, eventID, studentID string) error
	ListRoster(ctx context.Context, eventID string) ([]*RosterEntry, error)
}
