package domain

import (
	"errors"
	"time"
)

const (
	RoleDoctor  = "Doctor"
	RolePatient = "Patient"
)

var ErrUserExists = errors.New("username or email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyLoginAttempts = errors.New("too many failed login attempts")

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleDoctor || role == RolePatient
}

// User models an authenticated actor in the system. Inactive users are
// soft-deleted: they keep their id and history but are excluded from every
// lookup and listing.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}
