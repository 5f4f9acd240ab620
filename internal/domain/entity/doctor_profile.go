package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds doctor-specific data, 1:1 with a User of role doctor.
type DoctorProfile struct {
	UserID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	SpecialtyID       uint            `gorm:"not null;index" json:"specialty_id"`
	LicenseNumber     *string         `gorm:"type:varchar(50);uniqueIndex" json:"license_number,omitempty"`
	Qualification     string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ExperienceYears   int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationFee   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Bio               string          `gorm:"type:text" json:"bio,omitempty"`
	ImagePath         string          `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	IsVerified        bool            `gorm:"not null;default:false;index" json:"is_verified"`
	IsOnlineAvailable bool            `gorm:"not null;default:false" json:"is_online_available"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty    Specialty           `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Cities       []DoctorCity        `gorm:"foreignKey:DoctorProfileID;constraint:OnDelete:CASCADE" json:"cities,omitempty"`
	WorkingHours []DoctorWorkingHour `gorm:"foreignKey:DoctorProfileID;constraint:OnDelete:CASCADE" json:"working_hours,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
