package dto

import "time"

// Request DTOs
//
// Advertisement create/update arrive as multipart forms; the handler binds
// the scalar fields into these structs and passes the image upload alongside.

type CreateAdvertisementRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	LinkURL   string `json:"link_url" validate:"omitempty,url,max=500"`
	Position  string `json:"position" validate:"required,oneof=home_top home_bottom sidebar search_results"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateAdvertisementRequest struct {
	Title     string `json:"title" validate:"omitempty,max=255"`
	LinkURL   string `json:"link_url" validate:"omitempty,url,max=500"`
	Position  string `json:"position" validate:"omitempty,oneof=home_top home_bottom sidebar search_results"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type AdvertisementResponse struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	ImagePath  string     `json:"image_path"`
	LinkURL    string     `json:"link_url,omitempty"`
	Position   string     `json:"position"`
	StartDate  string     `json:"start_date"`
	EndDate    *string    `json:"end_date,omitempty"`
	IsActive   bool       `json:"is_active"`
	ClickCount int64      `json:"click_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type AdvertisementListResponse struct {
	Advertisements []AdvertisementResponse `json:"advertisements"`
	Total          int64                   `json:"total"`
}
