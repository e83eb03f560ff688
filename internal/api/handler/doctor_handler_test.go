package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

type stubPatientService struct {
	listFn   func(ctx context.Context) ([]domain.Patient, error)
	getFn    func(ctx context.Context, id string) (*domain.Patient, error)
	createFn func(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	updateFn func(ctx context.Context, id string, p *domain.Patient) (*domain.Patient, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
}

func (s *stubPatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.listFn(ctx)
}

func (s *stubPatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientService) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	return s.createFn(ctx, p)
}

func (s *stubPatientService) Update(ctx context.Context, id string, p *domain.Patient) (*domain.Patient, error) {
	return s.updateFn(ctx, id, p)
}

func (s *stubPatientService) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleteFn(ctx, id)
}

func TestDoctorHandler_Dashboard_Anonymous(t *testing.T) {
	e := newTestEcho()
	h := NewDoctorHandler(&stubAuthService{}, &stubPatientService{
		listFn: func(context.Context) ([]domain.Patient, error) {
			t.Fatalf("patient list should not be fetched for anonymous callers")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["loginSteps"]; !ok {
		t.Fatalf("expected informational payload, got %+v", resp)
	}
	if _, ok := resp["patients"]; ok {
		t.Fatalf("anonymous caller must not receive patients: %+v", resp)
	}
}

func TestDoctorHandler_Dashboard_WrongRole(t *testing.T) {
	e := newTestEcho()
	h := NewDoctorHandler(&stubAuthService{}, &stubPatientService{})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "pat1")
	c.Set("role", domain.RolePatient)

	if err := h.Dashboard(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDoctorHandler_Dashboard_Doctor(t *testing.T) {
	e := newTestEcho()
	h := NewDoctorHandler(&stubAuthService{}, &stubPatientService{
		listFn: func(context.Context) ([]domain.Patient, error) {
			return []domain.Patient{{ID: "1", FirstName: "Ada"}, {ID: "2", FirstName: "Grace"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "doc1")
	c.Set("role", domain.RoleDoctor)

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalPatients"] != float64(2) {
		t.Fatalf("unexpected totalPatients: %+v", resp)
	}
	doctor, ok := resp["doctor"].(map[string]any)
	if !ok || doctor["username"] != "doc1" {
		t.Fatalf("unexpected doctor block: %+v", resp)
	}
}

func TestDoctorHandler_Info(t *testing.T) {
	e := newTestEcho()
	h := NewDoctorHandler(&stubAuthService{
		listDoctorsFn: func(context.Context) ([]ports.UserSummary, error) {
			return []ports.UserSummary{{ID: "1", Username: "doc1", Email: "doc1@h.com", Role: domain.RoleDoctor}}, nil
		},
	}, &stubPatientService{})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalDoctors"] != float64(1) {
		t.Fatalf("unexpected totalDoctors: %+v", resp)
	}
}
