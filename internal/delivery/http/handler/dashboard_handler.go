package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/middleware"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/response"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/validator"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

// Redirect handles resolving the role-scoped dashboard path
// @Summary Resolve dashboard redirect
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	redirect, err := h.dashboardUsecase.Redirect(r.Context(), role)
	if err != nil {
		response.InternalServerError(w, "Failed to resolve dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard resolved", redirect)
}

// Admin handles the super-admin dashboard payload
// @Summary Admin dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.AdminDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Doctor handles the doctor dashboard payload
// @Summary Doctor dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/dashboard [get]
func (h *DashboardHandler) Doctor(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.dashboardUsecase.DoctorDashboard(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Patient handles the patient dashboard payload
// @Summary Patient dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/dashboard [get]
func (h *DashboardHandler) Patient(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.dashboardUsecase.PatientDashboard(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// SetLocation handles saving the user's current city selection
// @Summary Set current city
// @Tags Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetLocationRequest true "Set Location Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /location [put]
func (h *DashboardHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	city, err := h.dashboardUsecase.SetLocation(r.Context(), userID, req.CityID)
	if err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.Error(w, http.StatusBadRequest, "City not found", nil)
		default:
			response.InternalServerError(w, "Failed to save location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location saved", city)
}

// ClearLocation handles clearing the user's current city selection
// @Summary Clear current city
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /location [delete]
func (h *DashboardHandler) ClearLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.dashboardUsecase.ClearLocation(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Failed to clear location")
		return
	}

	response.Success(w, http.StatusOK, "Location cleared", nil)
}
