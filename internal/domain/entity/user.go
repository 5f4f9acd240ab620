package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Phone, Address and
// Specialization are legacy doctor columns kept on the user row by the
// original import; the structured versions live on DoctorProfile.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role           Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	Specialization string    `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Active() bool {
	return u.IsActive != nil && *u.IsActive
}
