package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/response"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/validator"
)

type SubscriptionHandler struct {
	subUsecase usecase.SubscriptionUsecase
	validator  *validator.CustomValidator
}

func NewSubscriptionHandler(subUsecase usecase.SubscriptionUsecase, validator *validator.CustomValidator) *SubscriptionHandler {
	return &SubscriptionHandler{
		subUsecase: subUsecase,
		validator:  validator,
	}
}

// Subscribe handles newsletter subscription
// @Summary Subscribe to the newsletter
// @Description Subscribe an email; a previously unsubscribed email is reactivated
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sub, err := h.subUsecase.Subscribe(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAlreadySubscribed:
			response.Conflict(w, "Email is already subscribed")
		default:
			response.InternalServerError(w, "Failed to subscribe")
		}
		return
	}

	status := http.StatusCreated
	if sub.Reactivated {
		status = http.StatusOK
	}
	response.Success(w, status, "Subscribed successfully", sub)
}
