package entity

import "time"

// Subscription is an email newsletter subscription, unique per email.
// Re-subscribing a deactivated email reactivates the existing row instead of
// inserting a duplicate.
type Subscription struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribed_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// Reactivate flips an inactive subscription back to active and refreshes the
// subscription timestamp.
func (s *Subscription) Reactivate(now time.Time) {
	s.IsActive = true
	s.SubscribedAt = now
}
