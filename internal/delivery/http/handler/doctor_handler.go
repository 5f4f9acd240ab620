package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/middleware"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/response"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/upload"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxImageFormMemory = 10 << 20 // 10 MB

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
	imageStore    *upload.ImageStore
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator, imageStore *upload.ImageStore) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
		imageStore:    imageStore,
	}
}

// List handles the public doctor directory listing
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.doctorUsecase.ListDoctors(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", result.Doctors, response.NewMeta(page, limit, result.Total))
}

// Search handles doctor search with filters
// @Summary Search doctors
// @Tags Doctors
// @Produce json
// @Param q query string false "Free-text query"
// @Param specialty_id query int false "Specialty filter"
// @Param city_id query int false "City filter"
// @Param verified_only query bool false "Only verified doctors"
// @Param online_only query bool false "Only online-consultation doctors"
// @Success 200 {object} response.Response
// @Router /doctors/search [get]
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	specialtyID, _ := strconv.ParseUint(q.Get("specialty_id"), 10, 32)
	cityID, _ := strconv.ParseUint(q.Get("city_id"), 10, 32)
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	req := &dto.SearchDoctorsRequest{
		Query:        q.Get("q"),
		SpecialtyID:  uint(specialtyID),
		CityID:       uint(cityID),
		VerifiedOnly: q.Get("verified_only") == "true",
		OnlineOnly:   q.Get("online_only") == "true",
		Page:         page,
		Limit:        limit,
	}

	result, err := h.doctorUsecase.SearchDoctors(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", result.Doctors, response.NewMeta(page, limit, result.Total))
}

// Get handles fetching a single doctor profile
// @Summary Get doctor by ID
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateProfile handles a doctor updating their own profile
// @Summary Update own doctor profile
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/profile [put]
func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSpecialtyNotFound:
			response.Error(w, http.StatusBadRequest, "Specialty not found", nil)
		case usecase.ErrLicenseAlreadyExists:
			response.Error(w, http.StatusConflict, "License number already in use", nil)
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", doctor)
}

// UploadImage handles a doctor uploading their profile image
// @Summary Upload doctor profile image
// @Tags Doctors
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Profile image"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/profile/image [post]
func (h *DoctorHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxImageFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Image file is required")
		return
	}
	defer file.Close()

	path, err := h.imageStore.Save(file, header, "doctors")
	if err != nil {
		switch err {
		case upload.ErrFileTooLarge, upload.ErrUnsupportedType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to store image")
		}
		return
	}

	if err := h.doctorUsecase.SetImage(r.Context(), userID, path); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update profile image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Image uploaded successfully", map[string]string{"image_path": path})
}

// ReplaceCities handles replacing a doctor's practice cities
// @Summary Replace practice cities
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReplaceCitiesRequest true "Replace Cities Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/cities [put]
func (h *DoctorHandler) ReplaceCities(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ReplaceCitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.ReplaceCities(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNoCities, usecase.ErrCityNotFound:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to replace cities")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cities updated successfully", doctor)
}

// SetWorkingHours handles replacing a doctor's weekly schedule
// @Summary Set working hours
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetWorkingHoursRequest true "Set Working Hours Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/working-hours [put]
func (h *DoctorHandler) SetWorkingHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hours, err := h.doctorUsecase.SetWorkingHours(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidWorkingHour:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to set working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated successfully", hours)
}

// SetVerified handles admin verification of a doctor
// @Summary Verify or unverify a doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/verify [patch]
func (h *DoctorHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req struct {
		IsVerified bool `json:"is_verified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.doctorUsecase.SetVerified(r.Context(), adminID, userID, req.IsVerified); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update verification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Verification updated successfully", nil)
}

// Delete handles admin removal of a doctor
// @Summary Delete a doctor
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), adminID, userID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}
