package model

import (
	"time"

	"github.com/google/uuid"
)

// PinModel is the GORM-specific struct for the 'pins' table.
//
// The partial unique index on owner_id (current pins only) is what serializes
// concurrent check-ins from the same owner; the migration creates it as:
//
//	CREATE UNIQUE INDEX uniq_pins_current_per_owner
//	    ON pins (owner_id) WHERE pin_type = 'current';
type PinModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID  `gorm:"not null;index:idx_pins_on_owner"`
	PinType     string     `gorm:"type:varchar(20);not null;index:idx_pins_on_owner"`
	Latitude    float64    `gorm:"type:decimal(10,8);not null;index:idx_pins_on_coords"`
	Longitude   float64    `gorm:"type:decimal(11,8);not null;index:idx_pins_on_coords"`
	ArrivalTime *time.Time `gorm:"index"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PinModel) TableName() string {
	return "pins"
}
