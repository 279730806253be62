// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for pin persistence.
var (
	// ErrPinNotFound is returned when a pin is not found.
	ErrPinNotFound = errors.New("pin not found")
	// ErrCurrentPinExists is returned when an owner already has a current pin.
	// The unique partial index on (owner_id) WHERE pin_type = 'current'
	// serializes concurrent check-ins; the loser of the race sees this error.
	ErrCurrentPinExists = errors.New("owner already has a current pin")
)

// Viewport is a half-open geographic bounding box [South, North) x [West, East).
// The half-open convention keeps a pin sitting exactly on a shared edge from
// being counted by two adjacent viewport requests.
type Viewport struct {
	North float64
	South float64
	East  float64
	West  float64
}

// PinRepository defines the interface for pin-related database operations.
type PinRepository interface {
	// CreatePin persists a new pin. Returns ErrCurrentPinExists when a
	// current pin for the owner already exists.
	CreatePin(ctx context.Context, pin *entity.Pin) error

	// FindPinByID retrieves a pin by its unique ID.
	FindPinByID(ctx context.Context, id uuid.UUID) (*entity.Pin, error)

	// FindCurrentPinByOwner retrieves the owner's single current pin.
	// Returns ErrPinNotFound if the owner has none.
	FindCurrentPinByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pin, error)

	// FindPinsByOwner retrieves all pins for an owner, newest first.
	FindPinsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error)

	// CountFuturePinsByOwner returns the number of future pins an owner holds.
	// Used for enforcing the future-pin capacity limit.
	CountFuturePinsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// FindPinsInViewport retrieves pins whose stored coordinates fall inside
	// the half-open viewport and whose decay anchor is after minAnchor.
	// Candidates only: visibility filtering and lifecycle annotation happen
	// in the query service.
	FindPinsInViewport(ctx context.Context, vp Viewport, minAnchor time.Time) ([]*entity.Pin, error)

	// FindFuturePinsInViewport retrieves future pins inside the viewport with
	// an arrival time within [from, to], ordered by arrival ascending with
	// creation time as tie-break.
	FindFuturePinsInViewport(ctx context.Context, vp Viewport, from, to time.Time) ([]*entity.Pin, error)

	// UpdatePin updates an existing pin record.
	UpdatePin(ctx context.Context, pin *entity.Pin) error

	// DeletePin removes a pin by its ID.
	DeletePin(ctx context.Context, id uuid.UUID) error

	// DeletePinsOlderThan hard-deletes pins whose decay anchor predates the
	// cutoff. Returns the number of rows removed. Used by the reaper;
	// idempotent by construction.
	DeletePinsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
