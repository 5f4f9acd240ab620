package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateDoctorProfileRequest does not re-collect email or password; license
// uniqueness is checked excluding the profile being updated.
type UpdateDoctorProfileRequest struct {
	FullName        string   `json:"full_name" validate:"omitempty,min=2"`
	Phone           string   `json:"phone" validate:"omitempty,min=7,max=20"`
	SpecialtyID     uint     `json:"specialty_id" validate:"omitempty"`
	LicenseNumber   *string  `json:"license_number" validate:"omitempty,max=50"`
	Qualification   *string  `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0,lte=100"`
	ConsultationFee *float64 `json:"consultation_fee" validate:"omitempty,gte=0,lte=100000"`
	Bio             *string  `json:"bio" validate:"omitempty"`
	IsOnline        *bool    `json:"is_online_available" validate:"omitempty"`
}

type ReplaceCitiesRequest struct {
	Cities []DoctorCityRequest `json:"cities" validate:"required,min=1,dive"`
}

type WorkingHourRequest struct {
	CityID       *uint  `json:"city_id" validate:"omitempty"`
	DayOfWeek    int    `json:"day_of_week" validate:"gte=0,lte=6"`
	OpenTime     string `json:"open_time" validate:"omitempty,hhmm"`
	CloseTime    string `json:"close_time" validate:"omitempty,hhmm"`
	IsAvailable  *bool  `json:"is_available" validate:"omitempty"`
	LegacyTiming string `json:"legacy_timing" validate:"omitempty,max=255"`
}

type SetWorkingHoursRequest struct {
	Hours []WorkingHourRequest `json:"hours" validate:"required,dive"`
}

type SearchDoctorsRequest struct {
	Query        string `json:"q"`
	SpecialtyID  uint   `json:"specialty_id"`
	CityID       uint   `json:"city_id"`
	VerifiedOnly bool   `json:"verified_only"`
	OnlineOnly   bool   `json:"online_only"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// Response DTOs

type DoctorCityResponse struct {
	CityID    uint     `json:"city_id"`
	CityName  string   `json:"city_name"`
	Address   string   `json:"address,omitempty"`
	Landmarks string   `json:"landmarks,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type WorkingHourResponse struct {
	ID           uint   `json:"id"`
	CityID       *uint  `json:"city_id,omitempty"`
	DayOfWeek    int    `json:"day_of_week"`
	OpenTime     string `json:"open_time,omitempty"`
	CloseTime    string `json:"close_time,omitempty"`
	IsAvailable  bool   `json:"is_available"`
	LegacyTiming string `json:"legacy_timing,omitempty"`
}

type DoctorResponse struct {
	ID                uuid.UUID             `json:"id"`
	Email             string                `json:"email"`
	FullName          string                `json:"full_name"`
	Phone             string                `json:"phone,omitempty"`
	Specialty         string                `json:"specialty"`
	SpecialtyID       uint                  `json:"specialty_id"`
	LicenseNumber     string                `json:"license_number,omitempty"`
	Qualification     string                `json:"qualification,omitempty"`
	ExperienceYears   int                   `json:"experience_years"`
	ConsultationFee   string                `json:"consultation_fee"`
	Bio               string                `json:"bio,omitempty"`
	ImagePath         string                `json:"image_path,omitempty"`
	IsVerified        bool                  `json:"is_verified"`
	IsOnlineAvailable bool                  `json:"is_online_available"`
	IsActive          *bool                 `json:"is_active,omitempty"`
	Cities            []DoctorCityResponse  `json:"cities,omitempty"`
	WorkingHours      []WorkingHourResponse `json:"working_hours,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
