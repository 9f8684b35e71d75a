package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService with the given
// repository.
func NewRegistrationService(registrationRepo domain.RegistrationRepository, logger *slog.Logger) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// isRetryableTxError reports whether err is a Postgres serialization
// failure or deadlock (SQLSTATE class 40). These are expected under
// contention and warrant one retry of the whole admission.
func isRetryableTxError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "40"
	}
	return false
}

func (s *registrationService) Register(ctx context.Context, eventID, studentID string) (*domain.Registration, bool, error) {
	if eventID == "" || studentID == "" {
		return nil, false, fmt.Errorf("%w: event ID and student ID are required", domain.ErrInvalidInput)
	}

	outcome, reg, err := s.registrationRepo.Admit(ctx, eventID, studentID, time.Now())
	if err != nil && isRetryableTxError(err) {
		// The conflict is not a caller error; re-run the full admission,
		// including all precondition checks, exactly once.
		s.logger.WarnContext(ctx, "admission conflict, retrying", "event_id", eventID, "student_id", studentID, "err", err)
		outcome, reg, err = s.registrationRepo.Admit(ctx, eventID, studentID, time.Now())
	}
	if err != nil {
		if isRetryableTxError(err) {
			return nil, false, domain.ErrTransactionFailed
		}
		return nil, false, fmt.Errorf("admit registration: %w", err)
	}

	switch outcome {
	case domain.AdmitAdmitted:
		return reg, true, nil
	case domain.AdmitAlreadyRegistered:
		return reg, false, nil
	case domain.AdmitEventNotFound:
		return nil, false, domain.ErrNotFound
	case domain.AdmitStudentNotFound:
		return nil, false, domain.ErrStudentNotFound
	case domain.AdmitCapacityExceeded:
		return nil, false, domain.ErrEventFull
	default:
		return nil, false, fmt.Errorf("unexpected admit outcome %d", outcome)
	}
}

func (s *registrationService) Cancel(ctx context.Context, eventID, studentID string) error {
	if eventID == "" || studentID == "" {
		return fmt.Errorf("%w: event ID and student ID are required", domain.ErrInvalidInput)
	}

	err := s.registrationRepo.Cancel(ctx, eventID, studentID)
	if err != nil && isRetryableTxError(err) {
		err = s.registrationRepo.Cancel(ctx, eventID, studentID)
	}
	if err != nil {
		if isRetryableTxError(err) {
			return domain.ErrTransactionFailed
		}
		return fmt.Errorf("cancel registration: %w", err)
	}
	return nil
}

func (s *registrationService) ListRoster(ctx context.Context, eventID string) ([]*domain.RosterEntry, error) {
	roster, err := s.registrationRepo.ListRoster(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	if roster == nil {
		roster = []*domain.RosterEntry{}
	}
	return roster, nil
}
