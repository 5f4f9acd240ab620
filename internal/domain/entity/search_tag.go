package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaggableKind is the closed set of entity kinds a search tag may attach to.
// Doctor profiles are the only taggable kind today; the enum exists so adding
// another kind forces every switch over it to be revisited.
type TaggableKind string

const (
	TaggableDoctorProfile TaggableKind = "doctor_profile"
)

func (k TaggableKind) Valid() bool {
	switch k {
	case TaggableDoctorProfile:
		return true
	}
	return false
}

func ParseTaggableKind(s string) (TaggableKind, error) {
	k := TaggableKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown taggable kind %q", s)
	}
	return k, nil
}

// SearchTag is a free-text indexing blob attached to exactly one taggable
// entity, used for full-text doctor search.
type SearchTag struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	TaggableKind TaggableKind `gorm:"type:varchar(30);not null;uniqueIndex:idx_taggable" json:"taggable_kind"`
	TaggableID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_taggable" json:"taggable_id"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SearchTag) TableName() string {
	return "search_tags"
}
