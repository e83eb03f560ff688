package domain

import "time"

// Audit actions recorded for authentication activity.
const (
	AuditActionRegister = "register"
	AuditActionLogin    = "login"
)

// AuthEvent is an append-only audit record of a registration or login
// attempt. Insertion failures are never fatal to the request that produced
// the event.
type AuthEvent struct {
	Action    string
	Username  string
	Success   bool
	Reason    string
	Timestamp time.Time
}
