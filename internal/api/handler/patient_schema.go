package handler

import (
	"time"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

type patientRequest struct {
	// ID is required on updates and must match the path id.
	ID          string    `json:"id,omitempty"`
	FirstName   string    `json:"first_name" validate:"required"`
	LastName    string    `json:"last_name"  validate:"required"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Gender      string    `json:"gender,omitempty"`
	Email       string    `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	// Version is the value read before editing; a stale version is rejected.
	Version int64 `json:"version,omitempty"`
}

func (r *patientRequest) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Diagnosis:   r.Diagnosis,
		Version:     r.Version,
	}
}

type patientListResponse struct {
	Message       string           `json:"message"`
	TotalPatients int              `json:"totalPatients"`
	Patients      []domain.Patient `json:"patients"`
}

type patientResponse struct {
	Message string          `json:"message"`
	Patient *domain.Patient `json:"patient"`
}

type messageResponse struct {
	Message string `json:"message"`
}
