package domain

import (
	"context"
	"time"
)

// Student represents a student who can register for events. The ID is
// caller-supplied (e.g. a matriculation number), not store-generated.
// swagger:model Student
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Course    string    `json:"course"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudent returns a new Student with the given fields.
func NewStudent(id, name, email, course string, year int, createdAt time.Time) *Student {
	return &Student{
		ID:        id,
		Name:      name,
		Email:     email,
		Course:    course,
		Year:      year,
		CreatedAt: createdAt,
	}
}

// StudentRepository defines storage operations for students.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	GetByEmail(ctx context.Context, email string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
}

// StudentService defines student directory operations.
type StudentService interface {
	Add(ctx context.Context, id, name, email, course string, year int) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
}
