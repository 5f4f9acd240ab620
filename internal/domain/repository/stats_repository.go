package repository

import "context"

// DirectoryCounts are the six resource counts reported by the legacy
// data-migration command and the admin dashboard.
type DirectoryCounts struct {
	Cities         int64 `json:"cities"`
	Specialties    int64 `json:"specialties"`
	DoctorProfiles int64 `json:"doctor_profiles"`
	DoctorUsers    int64 `json:"doctor_users"`
	WorkingHours   int64 `json:"working_hours"`
	SearchTags     int64 `json:"search_tags"`
}

type StatsRepository interface {
	Counts(ctx context.Context) (*DirectoryCounts, error)
}
