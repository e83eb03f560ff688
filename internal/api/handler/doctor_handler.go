package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yenihospital/hospital-system/internal/core/domain"
	"github.com/yenihospital/hospital-system/internal/core/ports"
)

// DoctorHandler serves the doctor dashboard and the public doctor listing.
type DoctorHandler struct {
	authService    ports.AuthService
	patientService ports.PatientService
}

func NewDoctorHandler(authService ports.AuthService, patientService ports.PatientService) *DoctorHandler {
	return &DoctorHandler{authService: authService, patientService: patientService}
}

type dashboardDoctor struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

type dashboardResponse struct {
	Message       string           `json:"message"`
	TotalPatients int              `json:"totalPatients"`
	Patients      []domain.Patient `json:"patients"`
	Doctor        dashboardDoctor  `json:"doctor"`
	Permissions   []string         `json:"permissions"`
}

type loginSteps struct {
	Step1 string `json:"step1"`
	Step2 string `json:"step2"`
	Step3 string `json:"step3"`
}

type dashboardInfoResponse struct {
	Message     string     `json:"message"`
	Instruction string     `json:"instruction"`
	LoginSteps  loginSteps `json:"loginSteps"`
}

type doctorListResponse struct {
	Message      string              `json:"message"`
	TotalDoctors int                 `json:"totalDoctors"`
	Doctors      []ports.UserSummary `json:"doctors"`
	Note         string              `json:"note"`
}

// Dashboard serves the patient list to authenticated doctors. Anonymous
// callers get instructions instead of a rejection; an authenticated caller
// with any other role is refused.
//
// @Summary      Doctor dashboard
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        token  query     string  false  "Bearer token (alternative to the Authorization header)"
// @Success      200    {object}  dashboardResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/doctors/dashboard [get]
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	claims, ok := ctxClaims(c)
	if !ok {
		return c.JSON(http.StatusOK, dashboardInfoResponse{
			Message:     "Doctor dashboard - login required",
			Instruction: "Sign in with a Doctor account to view the patient list.",
			LoginSteps: loginSteps{
				Step1: "POST /api/auth/register with role Doctor",
				Step2: "POST /api/auth/login to obtain a token",
				Step3: "GET /api/doctors/dashboard with the token as a bearer header or ?token= parameter",
			},
		})
	}

	if claims.Role != domain.RoleDoctor {
		return domain.ErrForbidden
	}

	patients, err := h.patientService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Message:       "Doctor dashboard - Dr. " + claims.Username,
		TotalPatients: len(patients),
		Patients:      patients,
		Doctor: dashboardDoctor{
			Username:  claims.Username,
			Role:      claims.Role,
			Timestamp: time.Now().UTC(),
		},
		Permissions: []string{"view patients", "create patients", "update patients"},
	})
}

// Info returns the public listing of active doctors.
//
// @Summary      List active doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {object}  doctorListResponse
// @Router       /api/doctors/info [get]
func (h *DoctorHandler) Info(c echo.Context) error {
	doctors, err := h.authService.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doctorListResponse{
		Message:      "Doctor listing",
		TotalDoctors: len(doctors),
		Doctors:      doctors,
		Note:         "Sign in as a doctor to access the dashboard.",
	})
}
