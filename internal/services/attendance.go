package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type attendanceService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	attendanceRepo   domain.AttendanceRepository
	now              func() time.Time
}

// NewAttendanceService creates an AttendanceService with the given
// repositories.
func NewAttendanceService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	attendanceRepo domain.AttendanceRepository,
) domain.AttendanceService {
	return &attendanceService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		attendanceRepo:   attendanceRepo,
		now:              time.Now,
	}
}

func (s *attendanceService) Mark(ctx context.Context, eventID, studentID string, status domain.AttendanceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown attendance status %q", domain.ErrInvalidInput, status)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	// Attendance cannot be recorded before the event happens. Compare on
	// calendar dates, not instants, so marking on the event day works.
	today := s.now()
	eventDay := time.Date(event.Date.Year(), event.Date.Month(), event.Date.Day(), 0, 0, 0, 0, time.UTC)
	currentDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if eventDay.After(currentDay) {
		return &domain.EventNotStartedError{EventDate: event.Date}
	}

	if _, err := s.registrationRepo.GetByEventAndStudent(ctx, eventID, studentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotRegistered
		}
		return fmt.Errorf("get registration: %w", err)
	}

	if err := s.attendanceRepo.Upsert(ctx, eventID, studentID, status); err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

func (s *attendanceService) ListForEvent(ctx context.Context, eventID string) ([]*domain.AttendanceEntry, error) {
	entries, err := s.attendanceRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if entries == nil {
		entries = []*domain.AttendanceEntry{}
	}
	return entries, nil
}
