package entity

import "time"

// City is a lookup table referenced by doctor practice locations.
type City struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	State     string    `gorm:"type:varchar(100)" json:"state,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (City) TableName() string {
	return "cities"
}
