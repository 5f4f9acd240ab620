package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest creates a browsing account; no profile row.
type RegisterPatientRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Phone           string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// RegisterDoctorRequest creates the user, the doctor profile and at least one
// practice city in one shot.
type RegisterDoctorRequest struct {
	Email           string              `json:"email" validate:"required,email"`
	Password        string              `json:"password" validate:"required,min=8"`
	ConfirmPassword string              `json:"confirm_password" validate:"required,eqfield=Password"`
	FullName        string              `json:"full_name" validate:"required,min=2"`
	Phone           string              `json:"phone" validate:"required,min=7,max=20"`
	SpecialtyID     uint                `json:"specialty_id" validate:"required"`
	LicenseNumber   string              `json:"license_number" validate:"omitempty,max=50"`
	Qualification   string              `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears int                 `json:"experience_years" validate:"gte=0,lte=100"`
	ConsultationFee float64             `json:"consultation_fee" validate:"gte=0,lte=100000"`
	Bio             string              `json:"bio" validate:"omitempty"`
	Cities          []DoctorCityRequest `json:"cities" validate:"required,min=1,dive"`
}

type DoctorCityRequest struct {
	CityID    uint     `json:"city_id" validate:"required"`
	Address   string   `json:"address" validate:"omitempty"`
	Landmarks string   `json:"landmarks" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  *bool     `json:"is_active,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
