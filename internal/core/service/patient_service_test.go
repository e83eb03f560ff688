package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

type stubPatientRepo struct {
	patients map[string]*domain.Patient
	nextID   int
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient)}
}

func clonePatient(p *domain.Patient) *domain.Patient {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPatientRepo) Insert(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	r.nextID++
	created := clonePatient(p)
	created.ID = strconv.Itoa(r.nextID)
	r.patients[created.ID] = clonePatient(created)
	return created, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	return clonePatient(p), nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	for _, p := range r.patients {
		out = append(out, *clonePatient(p))
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	stored, ok := r.patients[p.ID]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	if stored.Version != p.Version {
		return nil, domain.ErrConcurrencyConflict
	}
	updated := clonePatient(p)
	updated.Version = p.Version + 1
	updated.CreatedAt = stored.CreatedAt
	r.patients[p.ID] = clonePatient(updated)
	return updated, nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.patients[id]; !ok {
		return false, nil
	}
	delete(r.patients, id)
	return true, nil
}

func newTestPatientService() (*PatientService, *stubPatientRepo) {
	repo := newStubPatientRepo()
	return NewPatientService(repo, zerolog.Nop()), repo
}

func samplePatient() *domain.Patient {
	return &domain.Patient{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
		Email:       "ada@h.com",
		Diagnosis:   "checkup",
	}
}

func TestPatientService_CreateThenGet(t *testing.T) {
	svc, _ := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if created.Version != 1 {
		t.Fatalf("expected initial version 1, got %d", created.Version)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *got != *created {
		t.Fatalf("fetched record differs:\n got %+v\nwant %+v", got, created)
	}
}

func TestPatientService_Get_NotFound(t *testing.T) {
	svc, _ := newTestPatientService()

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_Update_IDMismatch(t *testing.T) {
	svc, repo := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	body := clonePatient(created)
	body.ID = "other"
	if _, err := svc.Update(ctx, created.ID, body); err != domain.ErrPatientIDMismatch {
		t.Fatalf("expected ErrPatientIDMismatch, got %v", err)
	}

	// The wrong row must not have been touched.
	if stored := repo.patients[created.ID]; stored.Version != 1 {
		t.Fatalf("record was modified despite mismatch: %+v", stored)
	}
}

func TestPatientService_Update_Success(t *testing.T) {
	svc, _ := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	body := clonePatient(created)
	body.Diagnosis = "recovered"
	updated, err := svc.Update(ctx, created.ID, body)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Diagnosis != "recovered" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Version != 2 {
		t.Fatalf("expected version bump to 2, got %d", updated.Version)
	}
}

func TestPatientService_Update_StaleVersion(t *testing.T) {
	svc, _ := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// First writer wins.
	first := clonePatient(created)
	first.Diagnosis = "updated"
	if _, err := svc.Update(ctx, created.ID, first); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Second writer still holds the old version.
	second := clonePatient(created)
	second.Diagnosis = "conflicting"
	if _, err := svc.Update(ctx, created.ID, second); err != domain.ErrConcurrencyConflict {
		t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
	}

	// Retry after re-fetch succeeds.
	fresh, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	fresh.Diagnosis = "conflicting"
	if _, err := svc.Update(ctx, created.ID, fresh); err != nil {
		t.Fatalf("retry after re-fetch failed: %v", err)
	}
}

func TestPatientService_Update_Vanished(t *testing.T) {
	svc, _ := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := svc.Update(ctx, created.ID, created); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_DeleteThenGet(t *testing.T) {
	svc, _ := newTestPatientService()
	ctx := context.Background()

	created, err := svc.Create(ctx, samplePatient())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	removed, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !removed {
		t.Fatalf("expected delete to report removal")
	}

	if _, err := svc.Get(ctx, created.ID); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound after delete, got %v", err)
	}

	removed, err = svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if removed {
		t.Fatalf("expected second delete to report nothing removed")
	}
}
