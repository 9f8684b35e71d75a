package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusevents/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type studentService struct {
	studentRepo domain.StudentRepository
}

// NewStudentService creates a StudentService with the given repository.
func NewStudentService(studentRepo domain.StudentRepository) domain.StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

func (s *studentService) Add(ctx context.Context, id, name, email, course string, year int) (*domain.Student, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if id == "" || name == "" || email == "" {
		return nil, fmt.Errorf("%w: student ID, name, and email are required", domain.ErrInvalidInput)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be a positive number", domain.ErrInvalidInput)
	}

	if _, err := s.studentRepo.GetByID(ctx, id); err == nil {
		return nil, domain.ErrDuplicateStudent
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if _, err := s.studentRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get student by email: %w", err)
	}

	student := domain.NewStudent(id, name, email, course, year, time.Now())
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return students, nil
}
