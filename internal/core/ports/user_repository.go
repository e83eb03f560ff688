package ports

import (
	"context"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Every query is scoped to active users; soft-deleted accounts are invisible.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByLogin matches the given value against username or email.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether an active user already holds
	// either identity value.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
}
