package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table. The
// table is owned by the profile service; this engine reads display fields
// only.
type ProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	AvatarURL string    `gorm:"type:text"`
	Interests []string  `gorm:"serializer:json;type:jsonb"`
	Mode      string    `gorm:"type:varchar(20)"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
