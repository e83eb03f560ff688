package ports

import (
	"context"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

// PatientService defines use-case operations over patient records.
type PatientService interface {
	List(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	// Update requires p.ID to match id and overwrites the whole record.
	Update(ctx context.Context, id string, p *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id string) (bool, error)
}
