package ports

import (
	"time"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// Claims is the validated content of an issued token.
type Claims struct {
	UserID   string
	Username string
	Email    string
	Role     string
	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time
}

// TokenIssuer encodes a user's identity into a signed, time-limited bearer
// token and validates tokens presented back by clients. Tokens are not
// tracked after issuance and cannot be revoked before expiry.
type TokenIssuer interface {
	Issue(user *domain.User) (token string, expiresAt time.Time, err error)
	// Decode verifies signature, issuer, audience and expiry. Any failure
	// is reported as domain.ErrInvalidToken.
	Decode(token string) (*Claims, error)
}
