package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{
		DB: db,
	}
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (id, name, email, course, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Name, s.Email, s.Course, s.Year, s.CreatedAt)
	return err
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `
		SELECT id, name, email, course, year, created_at
		FROM students
		WHERE id = $1
	`
	s := &domain.Student{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Course, &s.Year, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `
		SELECT id, name, email, course, year, created_at
		FROM students
		WHERE email = $1
	`
	s := &domain.Student{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&s.ID, &s.Name, &s.Email, &s.Course, &s.Year, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	query := `
		SELECT id, name, email, course, year, created_at
		FROM students
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		s := &domain.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Course, &s.Year, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
