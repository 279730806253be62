// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PinType distinguishes a "where I am" pin from a "where I will be" pin.
type PinType string

const (
	// PinTypeCurrent marks a pin at the owner's present location.
	PinTypeCurrent PinType = "current"
	// PinTypeFuture marks a pin at a destination the owner plans to reach.
	PinTypeFuture PinType = "future"
)

// Valid reports whether the pin type is one of the known values.
func (t PinType) Valid() bool {
	return t == PinTypeCurrent || t == PinTypeFuture
}

// Pin is a location claim dropped by a user. Coordinates are always stored at
// full precision; any coarsening for privacy happens at read time and is never
// written back.
type Pin struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the pin.
	OwnerID     uuid.UUID  // The ID of the user who dropped the pin.
	PinType     PinType    // Either "current" or "future".
	Latitude    float64    // The geographic latitude, full precision.
	Longitude   float64    // The geographic longitude, full precision.
	ArrivalTime *time.Time // When the owner expects to arrive. Set only for future pins.
	Description string     // Optional free text attached to the pin.
	CreatedAt   time.Time  // Immutable creation timestamp.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// DecayAnchor returns the instant lifecycle decay is measured from: arrival
// time for a future pin that has one, creation time otherwise.
func (p *Pin) DecayAnchor() time.Time {
	if p.PinType == PinTypeFuture && p.ArrivalTime != nil {
		return *p.ArrivalTime
	}

	return p.CreatedAt
}

// IsFuture reports whether the pin is a scheduled destination.
func (p *Pin) IsFuture() bool {
	return p.PinType == PinTypeFuture
}
