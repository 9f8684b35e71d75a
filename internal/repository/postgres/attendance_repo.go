package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

func (r *attendanceRepository) Upsert(ctx context.Context, eventID, studentID string, status domain.AttendanceStatus) error {
	query := `
		INSERT INTO attendance (event_id, student_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, student_id) DO UPDATE SET status = EXCLUDED.status
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, studentID, string(status))
	return err
}

// ListForEvent treats the registration roster as the universe and overlays
// the recorded status; registered students without an attendance row come
// back as absent.
func (r *attendanceRepository) ListForEvent(ctx context.Context, eventID string) ([]*domain.AttendanceEntry, error) {
	query := `
		SELECT s.id, s.name, COALESCE(a.status, 'absent') AS status
		FROM registrations r
		JOIN students s ON r.student_id = s.id
		LEFT JOIN attendance a ON r.event_id = a.event_id AND r.student_id = a.student_id
		WHERE r.event_id = $1
		ORDER BY s.name
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.AttendanceEntry, 0)
	for rows.Next() {
		entry := &domain.AttendanceEntry{}
		var status string
		if err := rows.Scan(&entry.StudentID, &entry.Name, &status); err != nil {
			return nil, err
		}
		entry.Status = domain.AttendanceStatus(status)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *attendanceRepository) CountPresent(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE event_id = $1 AND status = 'present'`, eventID).
		Scan(&count)
	return count, err
}
