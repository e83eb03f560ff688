package handler

import (
	"time"

	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=Doctor Patient"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type userListing struct {
	Total int                 `json:"total"`
	Users []ports.UserSummary `json:"users"`
}

// registerInfoResponse describes the registration operation and lists the
// accounts that already exist.
type registerInfoResponse struct {
	Message        string      `json:"message"`
	CurrentUsers   userListing `json:"currentUsers"`
	AvailableRoles []string    `json:"availableRoles"`
}

type loginUsage struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   string `json:"body"`
}

// loginInfoResponse describes how to authenticate.
type loginInfoResponse struct {
	Message string     `json:"message"`
	Usage   loginUsage `json:"usage"`
}

// meResponse echoes the identity carried by the caller's token.
type meResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
