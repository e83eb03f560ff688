package handler

import (
	"github.com/labstack/echo/v4"
)

// authClaims is the identity injected by the auth middleware.
type authClaims struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// ctxClaims extracts the claims set by the auth middleware. ok is false when
// the request went through without authentication (OptionalAuth, no token).
func ctxClaims(c echo.Context) (claims authClaims, ok bool) {
	claims.Role, _ = c.Get("role").(string)
	if claims.Role == "" {
		return authClaims{}, false
	}
	claims.UserID, _ = c.Get("user_id").(string)
	claims.Username, _ = c.Get("username").(string)
	claims.Email, _ = c.Get("email").(string)
	return claims, true
}
