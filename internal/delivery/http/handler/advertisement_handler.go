package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/middleware"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/response"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/upload"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/validator"

	"github.com/gorilla/mux"
)

type AdvertisementHandler struct {
	adUsecase  usecase.AdvertisementUsecase
	validator  *validator.CustomValidator
	imageStore *upload.ImageStore
}

func NewAdvertisementHandler(adUsecase usecase.AdvertisementUsecase, validator *validator.CustomValidator, imageStore *upload.ImageStore) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUsecase:  adUsecase,
		validator:  validator,
		imageStore: imageStore,
	}
}

// Create handles admin creation of an advertisement
// @Summary Create advertisement
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/advertisements [post]
func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxImageFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.CreateAdvertisementRequest{
		Title:     r.FormValue("title"),
		LinkURL:   r.FormValue("link_url"),
		Position:  r.FormValue("position"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	imagePath, err := h.saveImage(r)
	if err != nil {
		switch err {
		case upload.ErrFileTooLarge, upload.ErrUnsupportedType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to store image")
		}
		return
	}

	ad, err := h.adUsecase.Create(r.Context(), adminID, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrAdImageRequired, usecase.ErrAdInvalidPosition, usecase.ErrAdInvalidDates:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create advertisement")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Advertisement created successfully", ad)
}

// Update handles admin update of an advertisement
// @Summary Update advertisement
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/advertisements/{id} [put]
func (h *AdvertisementHandler) Update(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseUintVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := r.ParseMultipartForm(maxImageFormMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.UpdateAdvertisementRequest{
		Title:     r.FormValue("title"),
		LinkURL:   r.FormValue("link_url"),
		Position:  r.FormValue("position"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
	}
	if v := r.FormValue("is_active"); v != "" {
		active := v == "true"
		req.IsActive = &active
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// The image is optional on update; an absent file keeps the current one.
	imagePath, err := h.saveImage(r)
	if err != nil {
		switch err {
		case upload.ErrFileTooLarge, upload.ErrUnsupportedType:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to store image")
		}
		return
	}

	ad, err := h.adUsecase.Update(r.Context(), adminID, id, &req, imagePath)
	if err != nil {
		switch err {
		case usecase.ErrAdNotFound:
			response.NotFound(w, "Advertisement not found")
		case usecase.ErrAdInvalidPosition, usecase.ErrAdInvalidDates:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update advertisement")
		}
		return
	}

	response.Success(w, http.StatusOK, "Advertisement updated successfully", ad)
}

// Delete handles admin deletion of an advertisement
// @Summary Delete advertisement
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/advertisements/{id} [delete]
func (h *AdvertisementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseUintVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := h.adUsecase.Delete(r.Context(), adminID, id); err != nil {
		switch err {
		case usecase.ErrAdNotFound:
			response.NotFound(w, "Advertisement not found")
		default:
			response.InternalServerError(w, "Failed to delete advertisement")
		}
		return
	}

	response.Success(w, http.StatusOK, "Advertisement deleted successfully", nil)
}

// List handles admin listing of all advertisements
// @Summary List advertisements
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/advertisements [get]
func (h *AdvertisementHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.adUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list advertisements")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Advertisements retrieved successfully", result.Advertisements, response.NewMeta(page, limit, result.Total))
}

// ListActive handles the public active-advertisements feed
// @Summary List active advertisements
// @Tags Advertisements
// @Produce json
// @Param position query string false "Placement slot"
// @Success 200 {object} response.Response
// @Router /advertisements [get]
func (h *AdvertisementHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	ads, err := h.adUsecase.ListActive(r.Context(), r.URL.Query().Get("position"), time.Now())
	if err != nil {
		switch err {
		case usecase.ErrAdInvalidPosition:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to list advertisements")
		}
		return
	}

	response.Success(w, http.StatusOK, "Advertisements retrieved successfully", ads)
}

// Click handles recording an advertisement click
// @Summary Record advertisement click
// @Tags Advertisements
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /advertisements/{id}/click [post]
func (h *AdvertisementHandler) Click(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := h.adUsecase.RecordClick(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAdNotFound:
			response.NotFound(w, "Advertisement not found")
		default:
			response.InternalServerError(w, "Failed to record click")
		}
		return
	}

	response.Success(w, http.StatusOK, "Click recorded", nil)
}

// saveImage stores the optional "image" form file, returning "" when the
// request carries none.
func (h *AdvertisementHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", nil
	}
	defer file.Close()
	return h.imageStore.Save(file, header, "advertisements")
}

func parseUintVar(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(v), err
}
