package dto

import "time"

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriptionResponse struct {
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Reactivated  bool      `json:"reactivated"`
}
