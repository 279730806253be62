// Package usecase defines the application-level interfaces that the delivery
// layer depends on. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/presence"

	"github.com/google/uuid"
)

// DropPinInput carries the validated request to place a pin.
type DropPinInput struct {
	PinType     string
	Latitude    float64
	Longitude   float64
	ArrivalTime *time.Time
	Description string
}

// PinView is a pin annotated with its derived lifecycle state. Countdown is
// set only for future pins; ArrivedLabel only once the arrival has passed.
type PinView struct {
	ID           uuid.UUID           `json:"id"`
	OwnerID      uuid.UUID           `json:"owner_id"`
	PinType      entity.PinType      `json:"pin_type"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	ArrivalTime  *time.Time          `json:"arrival_time,omitempty"`
	Description  string              `json:"description,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	Lifecycle    presence.Lifecycle  `json:"lifecycle"`
	Countdown    *presence.Countdown `json:"countdown,omitempty"`
	ArrivedLabel string              `json:"arrived_label,omitempty"`
}

// DropPinResult reports the outcome of a drop. AlreadyExists marks the
// idempotent re-drop of a current pin at the same privacy-grid location;
// Moved marks a current pin relocated in place.
type DropPinResult struct {
	Pin           *PinView `json:"pin"`
	AlreadyExists bool     `json:"already_exists"`
	Moved         bool     `json:"moved"`
}

// PinUsecase defines the interface for pin lifecycle use cases
type PinUsecase interface {
	// DropPin creates a current pin, schedules a future pin, or moves the
	// owner's existing current pin in place
	DropPin(ctx context.Context, ownerID uuid.UUID, input *DropPinInput) (*DropPinResult, error)

	// DeletePin removes a pin owned by the caller
	DeletePin(ctx context.Context, ownerID, pinID uuid.UUID) error

	// ListOwnPins retrieves the caller's pins at full precision with
	// lifecycle annotations, expired pins filtered out
	ListOwnPins(ctx context.Context, ownerID uuid.UUID) ([]*PinView, error)

	// GeneratePinShareQR generates a share QR code for a pin owned by the caller
	GeneratePinShareQR(ctx context.Context, ownerID, pinID uuid.UUID) ([]byte, error)
}
