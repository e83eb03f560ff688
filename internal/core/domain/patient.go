package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")
var ErrPatientIDMismatch = errors.New("patient id does not match request path")

// ErrConcurrencyConflict signals that an update collided with another writer:
// the record's version moved between read and write. Callers recover by
// re-fetching the record and reapplying the change.
var ErrConcurrencyConflict = errors.New("patient record was modified by another request")

// Patient is a persisted clinical record. Version is the optimistic
// concurrency marker: every successful update increments it, and an update
// carrying a stale version fails with ErrConcurrencyConflict.
type Patient struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
