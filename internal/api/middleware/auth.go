package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// TokenDecoder validates a presented bearer token.
type TokenDecoder interface {
	Decode(token string) (*ports.Claims, error)
}

// Auth validates the bearer token and injects its claims into the context.
// The token is taken from the Authorization header, or from the "token"
// query parameter for clients that cannot set headers. Both paths get the
// same signature, issuer, audience and expiry checks.
func Auth(decoder TokenDecoder) echo.MiddlewareFunc {
	return auth(decoder, false)
}

// OptionalAuth behaves like Auth but lets anonymous requests through with no
// claims set. A token that is present but invalid is still rejected.
func OptionalAuth(decoder TokenDecoder) echo.MiddlewareFunc {
	return auth(decoder, true)
}

func auth(decoder TokenDecoder, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return err
			}
			if token == "" {
				if optional {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization")
			}

			claims, err := decoder.Decode(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}
	return c.QueryParam("token"), nil
}
