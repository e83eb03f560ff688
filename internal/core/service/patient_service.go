package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// PatientService orchestrates CRUD over patient records.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists the record as given. The store assigns the id and the
// initial version.
func (s *PatientService) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	now := time.Now().UTC()
	p.ID = ""
	p.Version = 1
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create patient")
		return nil, err
	}

	s.log.Info().Str("patient_id", created.ID).Msg("patient created")
	return created, nil
}

// Update overwrites the whole record. The body must carry the same id as the
// request path; a vanished record and a stale version are reported as
// distinct failures, because only the latter is worth retrying.
func (s *PatientService) Update(ctx context.Context, id string, p *domain.Patient) (*domain.Patient, error) {
	if p.ID != id {
		return nil, domain.ErrPatientIDMismatch
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("patient_id", updated.ID).Int64("version", updated.Version).Msg("patient updated")
	return updated, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.log.Info().Str("patient_id", id).Msg("patient deleted")
	}
	return removed, nil
}
