package entity

import (
	"fmt"
	"time"
)

// AdPosition is the fixed set of placement slots for promotional content.
type AdPosition string

const (
	AdPositionHomeTop       AdPosition = "home_top"
	AdPositionHomeBottom    AdPosition = "home_bottom"
	AdPositionSidebar       AdPosition = "sidebar"
	AdPositionSearchResults AdPosition = "search_results"
)

func (p AdPosition) Valid() bool {
	switch p {
	case AdPositionHomeTop, AdPositionHomeBottom, AdPositionSidebar, AdPositionSearchResults:
		return true
	}
	return false
}

func ParseAdPosition(s string) (AdPosition, error) {
	p := AdPosition(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown ad position %q", s)
	}
	return p, nil
}

// Advertisement is an admin-managed promotional placement with an active
// date range. A nil EndDate means the ad is open-ended.
type Advertisement struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	ImagePath  string     `gorm:"type:varchar(255);not null" json:"image_path"`
	LinkURL    string     `gorm:"type:varchar(500)" json:"link_url,omitempty"`
	Position   AdPosition `gorm:"type:varchar(20);not null;index" json:"position"`
	StartDate  time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	IsActive   bool       `gorm:"not null;default:true;index" json:"is_active"`
	ClickCount int64      `gorm:"not null;default:0" json:"click_count"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}

// ActiveWithin reports whether the ad should be displayed at the given
// instant: flagged active and the date range contains now.
func (a *Advertisement) ActiveWithin(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if now.Before(a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(endOfDay(*a.EndDate)) {
		return false
	}
	return true
}

// Expired reports whether the ad's end date has passed.
func (a *Advertisement) Expired(now time.Time) bool {
	return a.EndDate != nil && now.After(endOfDay(*a.EndDate))
}

// endOfDay treats a date column as inclusive through 23:59:59.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}
