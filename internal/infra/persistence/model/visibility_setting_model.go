package model

import (
	"time"

	"github.com/google/uuid"
)

// VisibilitySettingModel is the GORM-specific struct for the
// 'visibility_settings' table. One row per user, upserted on change.
type VisibilitySettingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Level     string    `gorm:"type:varchar(20);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisibilitySettingModel) TableName() string {
	return "visibility_settings"
}
