package ports

import (
	"context"
	"time"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// Role defaults to domain.RolePatient when empty.
	Role string
}

// AuthResult is returned after a successful registration or login.
type AuthResult struct {
	Username  string
	Role      string
	Token     string
	ExpiresAt time.Time
}

// UserSummary is the listing view of an account. It never carries the
// password hash.
type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService implements account registration, login and user listings.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, login, password string) (*AuthResult, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	ListDoctors(ctx context.Context) ([]UserSummary, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
