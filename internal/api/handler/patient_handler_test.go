package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yenihospital/hospital-system/internal/core/domain"
)

func TestPatientHandler_List(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		listFn: func(context.Context) ([]domain.Patient, error) {
			return []domain.Patient{{ID: "1", FirstName: "Ada"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalPatients"] != float64(1) {
		t.Fatalf("unexpected totalPatients: %+v", resp)
	}
}

func TestPatientHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		getFn: func(context.Context, string) (*domain.Patient, error) {
			return nil, domain.ErrPatientNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/patients/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		createFn: func(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
			if p.FirstName != "Ada" || p.LastName != "Lovelace" {
				t.Fatalf("unexpected patient: %+v", p)
			}
			created := *p
			created.ID = "1"
			created.Version = 1
			return &created, nil
		},
	})

	body := strings.NewReader(`{"first_name":"Ada","last_name":"Lovelace","date_of_birth":"1990-03-14T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	patient, ok := resp["patient"].(map[string]any)
	if !ok || patient["id"] != "1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPatientHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		createFn: func(context.Context, *domain.Patient) (*domain.Patient, error) {
			t.Fatalf("service should not be called for invalid payloads")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"first_name":"Ada"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPatientHandler_Update_IDMismatch(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		updateFn: func(_ context.Context, id string, p *domain.Patient) (*domain.Patient, error) {
			if p.ID != id {
				return nil, domain.ErrPatientIDMismatch
			}
			return p, nil
		},
	})

	body := strings.NewReader(`{"id":"other","first_name":"Ada","last_name":"Lovelace","date_of_birth":"1990-03-14T00:00:00Z","version":1}`)
	req := httptest.NewRequest(http.MethodPut, "/api/patients/1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); !errors.Is(err, domain.ErrPatientIDMismatch) {
		t.Fatalf("expected ErrPatientIDMismatch, got %v", err)
	}
}

func TestPatientHandler_Update_Conflict(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		updateFn: func(context.Context, string, *domain.Patient) (*domain.Patient, error) {
			return nil, domain.ErrConcurrencyConflict
		},
	})

	body := strings.NewReader(`{"id":"1","first_name":"Ada","last_name":"Lovelace","date_of_birth":"1990-03-14T00:00:00Z","version":1}`)
	req := httptest.NewRequest(http.MethodPut, "/api/patients/1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); !errors.Is(err, domain.ErrConcurrencyConflict) {
		t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
	}
}

func TestPatientHandler_Delete(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		deleteFn: func(_ context.Context, id string) (bool, error) {
			return id == "1", nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPatientHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewPatientHandler(&stubPatientService{
		deleteFn: func(context.Context, string) (bool, error) {
			return false, nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}
