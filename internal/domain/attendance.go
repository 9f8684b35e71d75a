package domain

import "context"

// AttendanceStatus is the recorded attendance state for a registered
// student. A registered student without an attendance row is reported as
// AttendanceAbsent.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// Attendance represents a recorded attendance status for a registered
// student. The (EventID, StudentID) pair is unique; a row may exist only
// while the matching registration exists.
// swagger:model Attendance
type Attendance struct {
	ID        string           `json:"id"`
	EventID   string           `json:"event_id"`
	StudentID string           `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceEntry is one row of an event's attendance sheet: every
// registered student, with status defaulting to absent when unmarked.
// swagger:model AttendanceEntry
type AttendanceEntry struct {
	StudentID string           `json:"student_id"`
	Name      string           `json:"name"`
	Status    AttendanceStatus `json:"status"`
}

// AttendanceRepository defines storage operations for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the attendance row or overwrites its status.
	Upsert(ctx context.Context, eventID, studentID string, status AttendanceStatus) error
	// ListForEvent returns every registered student for the event with the
	// recorded status, defaulting to absent, ordered by student name.
	ListForEvent(ctx context.Context, eventID string) ([]*AttendanceEntry, error)
	CountPresent(ctx context.Context, eventID string) (int, error)
}

// AttendanceService defines attendance tracking operations.
type AttendanceService interface {
	// Mark records or updates the student's attendance for the event. It
	// fails when the event is missing, has not happened yet, or the student
	// is not registered.
	Mark(ctx context.Context, eventID, studentID string, status AttendanceStatus) error
	ListForEvent(ctx context.Context, eventID string) ([]*AttendanceEntry, error)
}
