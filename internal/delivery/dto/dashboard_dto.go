package dto

import "time"

// Dashboard props are computed server-side; pages render them as-is.

type DashboardRedirectResponse struct {
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

type AdminDashboardResponse struct {
	Counts      DirectoryCountsResponse `json:"counts"`
	TotalUsers  int64                   `json:"total_users"`
	RecentAudit []AuditEntryResponse    `json:"recent_audit"`
}

type DirectoryCountsResponse struct {
	Cities         int64 `json:"cities"`
	Specialties    int64 `json:"specialties"`
	DoctorProfiles int64 `json:"doctor_profiles"`
	DoctorUsers    int64 `json:"doctor_users"`
	WorkingHours   int64 `json:"working_hours"`
	SearchTags     int64 `json:"search_tags"`
}

type AuditEntryResponse struct {
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type DoctorDashboardResponse struct {
	Profile             *DoctorResponse `json:"profile"`
	ProfileCompleteness int             `json:"profile_completeness"` // 0-100
	CityCount           int             `json:"city_count"`
	WorkingHourCount    int             `json:"working_hour_count"`
}

type PatientDashboardResponse struct {
	FeaturedDoctors []DoctorResponse        `json:"featured_doctors"`
	Advertisements  []AdvertisementResponse `json:"advertisements"`
	CurrentCity     *CityResponse           `json:"current_city,omitempty"`
}

type CityResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

type SpecialtyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SetLocationRequest struct {
	CityID uint `json:"city_id" validate:"required"`
}
