package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Admit runs the whole admission sequence in one transaction. The event row
// is read FOR UPDATE before the count so that two concurrent admissions for
// the same event serialize on the row lock: the second transaction's count
// includes the first one's insert. Admissions for different events do not
// block each other.
func (r *registrationRepository) Admit(ctx context.Context, eventID, studentID string, now time.Time) (domain.AdmitOutcome, *domain.Registration, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback()

	var totalSlots int
	err = tx.QueryRowContext(ctx,
		`SELECT total_slots FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&totalSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdmitEventNotFound, nil, nil
		}
		return 0, nil, err
	}

	var studentExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, studentID).
		Scan(&studentExists)
	if err != nil {
		return 0, nil, err
	}
	if !studentExists {
		return domain.AdmitStudentNotFound, nil, nil
	}

	existing := &domain.Registration{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, event_id, student_id, registered_at
		 FROM registrations WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID).
		Scan(&existing.ID, &existing.EventID, &existing.StudentID, &existing.RegisteredAt)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return 0, nil, err
		}
		return domain.AdmitAlreadyRegistered, existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, nil, err
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).
		Scan(&count)
	if err != nil {
		return 0, nil, err
	}
	if count >= totalSlots {
		return domain.AdmitCapacityExceeded, nil, nil
	}

	reg := &domain.Registration{
		EventID:      eventID,
		StudentID:    studentID,
		RegisteredAt: now,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO registrations (event_id, student_id, registered_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		eventID, studentID, now).
		Scan(&reg.ID)
	if err != nil {
		return 0, nil, err
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, err
	}
	return domain.AdmitAdmitted, reg, nil
}

// Cancel deletes attendance before the registration so the
// attendance-implies-registration invariant holds at every point the
// transaction could be observed.
func (r *registrationRepository) Cancel(ctx context.Context, eventID, studentID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM attendance WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *registrationRepository) GetByEventAndStudent(ctx context.Context, eventID, studentID string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, student_id, registered_at
		FROM registrations
		WHERE event_id = $1 AND student_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, studentID).
		Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListRoster(ctx context.Context, eventID string) ([]*domain.RosterEntry, error) {
	query := `
		SELECT s.id, s.name, s.email, r.registered_at
		FROM students s
		JOIN registrations r ON s.id = r.student_id
		WHERE r.event_id = $1
		ORDER BY s.name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]*domain.RosterEntry, 0)
	for rows.Next() {
		entry := &domain.RosterEntry{}
		if err := rows.Scan(&entry.StudentID, &entry.Name, &entry.Email, &entry.RegisteredAt); err != nil {
			return nil, err
		}
		roster = append(roster, entry)
	}
	return roster, rows.Err()
}

func (r *registrationRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).
		Scan(&count)
	return count, err
}
