package handler

import (
	"net/http"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/response"
)

type LookupHandler struct {
	lookupUsecase usecase.LookupUsecase
}

func NewLookupHandler(lookupUsecase usecase.LookupUsecase) *LookupHandler {
	return &LookupHandler{lookupUsecase: lookupUsecase}
}

// ListCities handles the public city list
// @Summary List cities
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /cities [get]
func (h *LookupHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.lookupUsecase.ListCities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list cities")
		return
	}

	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}

// ListSpecialties handles the public specialty list
// @Summary List specialties
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /specialties [get]
func (h *LookupHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.lookupUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
