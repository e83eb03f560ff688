package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yenihospital/hospital-system/internal/api/metrics"
	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for registration, login and user listings.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a bearer token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(result.Role).Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Token:     result.Token,
		Username:  result.Username,
		Role:      result.Role,
		ExpiresAt: result.ExpiresAt,
	})
}

// RegisterInfo describes the registration operation and lists existing
// active accounts.
//
// @Summary      Registration info and current users
// @Tags         auth
// @Produce      json
// @Success      200  {object}  registerInfoResponse
// @Router       /api/auth/register [get]
func (h *AuthHandler) RegisterInfo(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerInfoResponse{
		Message: "POST to this endpoint with username, email, password and an optional role to create an account.",
		CurrentUsers: userListing{
			Total: len(users),
			Users: users,
		},
		AvailableRoles: []string{domain.RoleDoctor, domain.RolePatient},
	})
}

// Login authenticates a user and returns a fresh bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials (username or email)"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Token:     result.Token,
		Username:  result.Username,
		Role:      result.Role,
		ExpiresAt: result.ExpiresAt,
	})
}

// LoginInfo describes the login operation.
//
// @Summary      Login info
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginInfoResponse
// @Router       /api/auth/login [get]
func (h *AuthHandler) LoginInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, loginInfoResponse{
		Message: "POST your credentials to this endpoint to receive a bearer token.",
		Usage: loginUsage{
			Method: http.MethodPost,
			Path:   "/api/auth/login",
			Body:   `{"username": "...", "password": "..."}`,
		},
	})
}

// ListUsers returns all active accounts.
//
// @Summary      List active users
// @Tags         auth
// @Produce      json
// @Success      200  {array}  ports.UserSummary
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Me echoes the identity carried by the caller's token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := ctxClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return c.JSON(http.StatusOK, meResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	})
}
