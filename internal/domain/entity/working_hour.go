package entity

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek follows time.Weekday numbering (Sunday = 0).
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// DoctorWorkingHour is one availability window for a doctor, optionally
// scoped to a city. Rows imported from the legacy system may carry only a
// free-text LegacyTiming instead of structured open/close times.
type DoctorWorkingHour struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_profile_id"`
	CityID          *uint     `gorm:"index" json:"city_id,omitempty"`
	DayOfWeek       DayOfWeek `gorm:"not null" json:"day_of_week"`
	OpenTime        string    `gorm:"type:time" json:"open_time,omitempty"`  // "HH:MM"
	CloseTime       string    `gorm:"type:time" json:"close_time,omitempty"` // "HH:MM"
	IsAvailable     bool      `gorm:"not null;default:true" json:"is_available"`
	LegacyTiming    string    `gorm:"type:varchar(255)" json:"legacy_timing,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DoctorWorkingHour) TableName() string {
	return "doctor_working_hours"
}
