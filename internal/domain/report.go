package domain

import "context"

// EventStatistics holds aggregate registration and attendance figures for
// one event. Percentage is attended/registered*100 rounded to two decimal
// places, and exactly 0 when nobody is registered.
// swagger:model EventStatistics
type EventStatistics struct {
	Registered int     `json:"registered"`
	Attended   int     `json:"attended"`
	Percentage float64 `json:"percentage"`
}

// ReportService computes derived statistics and materializes the roster
// for export.
type ReportService interface {
	Statistics(ctx context.Context, eventID string) (*EventStatistics, error)
	// ExportRoster returns the attendance sheet rows for serialization.
	// Returns ErrNothingToExport when the event has no registrations.
	ExportRoster(ctx context.Context, eventID string) ([]*AttendanceEntry, error)
}
