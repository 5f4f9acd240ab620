package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorCity associates a doctor profile with a city it practices in.
// A doctor can practice in a city at most once.
type DoctorCity struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_city" json:"doctor_profile_id"`
	CityID          uint      `gorm:"not null;uniqueIndex:idx_doctor_city;index" json:"city_id"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	Landmarks       string    `gorm:"type:varchar(255)" json:"landmarks,omitempty"`
	Latitude        *float64  `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude       *float64  `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	City City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (DoctorCity) TableName() string {
	return "doctor_cities"
}
