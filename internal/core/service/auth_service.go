package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	// TooManyFailures reports whether login has exceeded the failure budget
	// inside the current window.
	TooManyFailures(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}

// AuthService implements registration, login and user listings.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenIssuer
	audit   ports.AuditRepository
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	audit ports.AuditRepository,
	limiter LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, audit: audit, limiter: limiter, log: log}
}

// Register creates a new active account and returns a fresh token for it.
// The uniqueness check and the insert are not one atomic step; the unique
// indexes on the users collection catch the losing side of a concurrent
// duplicate registration.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RolePatient
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		s.recordAudit(ctx, domain.AuditActionRegister, input.Username, false, "duplicate identity")
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, domain.AuditActionRegister, created.Username, true, "")
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{
		Username:  created.Username,
		Role:      created.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login verifies credentials and issues a fresh token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (*ports.AuthResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.limiter.TooManyFailures(ctx, login)
	if err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("login limiter check failed, processing anyway")
	} else if blocked {
		s.recordAudit(ctx, domain.AuditActionLogin, login, false, "throttled")
		return nil, domain.ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failLogin(ctx, login, "unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failLogin(ctx, login, "wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, login); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("failed to reset login limiter")
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, domain.AuditActionLogin, user.Username, true, "")
	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.AuthResult{
		Username:  user.Username,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ListUsers returns all active accounts without their password hashes.
func (s *AuthService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaries(users), nil
}

// ListDoctors returns all active accounts holding the Doctor role.
func (s *AuthService) ListDoctors(ctx context.Context) ([]ports.UserSummary, error) {
	doctors, err := s.users.ListByRole(ctx, domain.RoleDoctor)
	if err != nil {
		return nil, err
	}
	return toSummaries(doctors), nil
}

func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *AuthService) failLogin(ctx context.Context, login, reason string) {
	if err := s.limiter.RecordFailure(ctx, login); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("failed to record login failure")
	}
	s.recordAudit(ctx, domain.AuditActionLogin, login, false, reason)
}

// recordAudit appends to the auth event trail. Audit failures never fail the
// request that produced them.
func (s *AuthService) recordAudit(ctx context.Context, action, username string, success bool, reason string) {
	event := &domain.AuthEvent{
		Action:    action,
		Username:  username,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("action", action).Str("username", username).Msg("failed to insert audit event")
	}
}

func toSummaries(users []domain.User) []ports.UserSummary {
	summaries := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, ports.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return summaries
}
