package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel is the GORM-specific struct for the 'connections' table.
// The table is owned and written by the external social service; this engine
// only ever reads it, and only when the postgres connection source is
// configured.
type ConnectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RequesterID uuid.UUID `gorm:"not null;index:idx_connections_on_pair"`
	AddresseeID uuid.UUID `gorm:"not null;index:idx_connections_on_pair"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
