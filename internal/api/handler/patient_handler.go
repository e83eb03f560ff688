package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yenihospital/hospital-system/internal/api/metrics"
	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// PatientHandler handles HTTP requests for patient record CRUD.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// List handles GET /api/patients.
//
// @Summary      List patient records
// @Tags         patients
// @Produce      json
// @Success      200  {object}  patientListResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientListResponse{
		Message:       "Patient listing",
		TotalPatients: len(patients),
		Patients:      patients,
	})
}

// Get handles GET /api/patients/:id.
//
// @Summary      Get a patient record
// @Tags         patients
// @Produce      json
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  patientResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patientResponse{
		Message: "Patient detail",
		Patient: patient,
	})
}

// Create handles POST /api/patients.
//
// @Summary      Create a patient record
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      patientRequest  true  "Patient record"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.PatientsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, patientResponse{
		Message: "Patient created",
		Patient: created,
	})
}

// Update handles PUT /api/patients/:id. The body id must match the path id,
// and the body version must match the stored record; a stale version yields
// 409 and the client should re-fetch and retry.
//
// @Summary      Update a patient record
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Patient id"
// @Param        body  body      patientRequest  true  "Full patient record including id and version"
// @Success      200   {object}  patientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.PatientUpdateConflictsTotal.Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, patientResponse{
		Message: "Patient updated",
		Patient: updated,
	})
}

// Delete handles DELETE /api/patients/:id.
//
// @Summary      Delete a patient record
// @Tags         patients
// @Produce      json
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	removed, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrPatientNotFound
	}

	metrics.PatientsDeletedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Patient deleted"})
}
