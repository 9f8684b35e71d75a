package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"campusevents/internal/domain"
)

type reportService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	attendanceRepo   domain.AttendanceRepository
}

// NewReportService creates a ReportService with the given repositories.
func NewReportService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	attendanceRepo domain.AttendanceRepository,
) domain.ReportService {
	return &reportService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		attendanceRepo:   attendanceRepo,
	}
}

func (s *reportService) Statistics(ctx context.Context, eventID string) (*domain.EventStatistics, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	registered, err := s.registrationRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	attended, err := s.attendanceRepo.CountPresent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	// Percentage is defined as exactly 0 for an event with no
	// registrations; this is policy, not an error.
	percentage := 0.0
	if registered > 0 {
		percentage = math.Round(float64(attended)/float64(registered)*100*100) / 100
	}

	return &domain.EventStatistics{
		Registered: registered,
		Attended:   attended,
		Percentage: percentage,
	}, nil
}

func (s *reportService) ExportRoster(ctx context.Context, eventID string) ([]*domain.AttendanceEntry, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	entries, err := s.attendanceRepo.ListForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNothingToExport
	}
	return entries, nil
}
