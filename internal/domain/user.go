package domain

import (
	"context"
	"time"
)

// Known user roles.
const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
)

// User represents an operator account (admin or volunteer). Credential
// storage and verification live behind the PasswordHasher port.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, username, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user's
// identity and role.
type TokenVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// AuthService defines login and account creation.
type AuthService interface {
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, username, password string) (token string, user *User, err error)
	CreateUser(ctx context.Context, username, password, role string) (*User, error)
}
