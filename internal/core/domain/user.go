package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ThrottledError is a blocked login attempt. It matches ErrTooManyAttempts
// under errors.Is and carries the seconds until the block expires so the
// transport layer can set Retry-After.
type ThrottledError struct {
	RetryAfterSeconds int64
}

func (e *ThrottledError) Error() string { return ErrTooManyAttempts.Error() }

func (e *ThrottledError) Unwrap() error { return ErrTooManyAttempts }

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is an authenticated identity plus its role set, derived from a
// validated token.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal holds the given role. Roles are
// exact-match; admin does not implicitly include user.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
