package ports

import (
	"context"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// PatientRepository defines persistence operations for patient records.
type PatientRepository interface {
	Insert(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	// Update overwrites the record whose id and version both match.
	// Returns domain.ErrPatientNotFound when the id no longer exists and
	// domain.ErrConcurrencyConflict when the id exists but the version moved.
	Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	// Delete reports whether a record was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
