// Package presence holds the pure time-based classification rules for pins:
// lifecycle decay and arrival countdowns. It is the single source of truth for
// every threshold; callers must never re-derive these constants locally.
package presence

import (
	"time"

	"pindrop/internal/domain/entity"
)

// Status is the lifecycle phase of a pin at a given instant.
type Status string

const (
	// StatusScheduled is a future pin whose arrival time has not been reached.
	StatusScheduled Status = "scheduled"
	// StatusActive is a pin inside its fresh window.
	StatusActive Status = "active"
	// StatusRecentlyArrived is a future pin shortly after its arrival time.
	StatusRecentlyArrived Status = "recently_arrived"
	// StatusGhost is a pin past its active window, fading but still shown.
	StatusGhost Status = "ghost"
	// StatusOldGhost is a ghost in its final stretch before expiry.
	StatusOldGhost Status = "old_ghost"
	// StatusExpired is a pin past the retention ceiling; callers treat it as
	// not found.
	StatusExpired Status = "expired"
)

// Lifecycle windows, anchored to the pin's decay anchor (creation time for
// current pins, arrival time for future pins).
const (
	// ActiveWindow is how long a pin stays fully fresh.
	ActiveWindow = 24 * time.Hour
	// GhostWindow is the upper bound of the ghost phase.
	GhostWindow = 7 * 24 * time.Hour
	// ExpiryWindow is the retention ceiling; the reaper hard-deletes beyond it.
	ExpiryWindow = 30 * 24 * time.Hour
	// ArrivalGrace is how long a future pin reads as recently arrived.
	ArrivalGrace = 3 * time.Hour
)

// Opacity floors for the decay curve.
const (
	ghostFloor    = 0.3
	oldGhostFloor = 0.1
)

// Lifecycle is the derived, never-stored view of a pin's age. All fields are
// recomputed on every read so they are always fresh.
type Lifecycle struct {
	Status   Status  `json:"status"`
	Opacity  float64 `json:"opacity"`
	AgeHours float64 `json:"age_hours"`
	IsActive bool    `json:"is_active"`
}

// Compute classifies a pin at the given instant. It is pure: no I/O, no side
// effects, deterministic for a fixed (pin, now) pair.
func Compute(pin *entity.Pin, now time.Time) Lifecycle {
	if pin.IsFuture() && pin.ArrivalTime != nil && now.Before(*pin.ArrivalTime) {
		return Lifecycle{
			Status:   StatusScheduled,
			Opacity:  1.0,
			AgeHours: 0,
			IsActive: true,
		}
	}

	age := now.Sub(pin.DecayAnchor())
	if age < 0 {
		age = 0
	}
	ageHours := age.Hours()

	status := statusForAge(pin, age)

	return Lifecycle{
		Status:   status,
		Opacity:  opacityForAge(age),
		AgeHours: ageHours,
		IsActive: age < ActiveWindow,
	}
}

func statusForAge(pin *entity.Pin, age time.Duration) Status {
	switch {
	case age >= ExpiryWindow:
		return StatusExpired
	case age >= GhostWindow:
		return StatusOldGhost
	case age >= ActiveWindow:
		return StatusGhost
	case pin.IsFuture() && age < ArrivalGrace:
		return StatusRecentlyArrived
	default:
		return StatusActive
	}
}

// opacityForAge maps age to a display opacity. The curve is monotonically
// non-increasing: 1.0 through the active window, linear 1.0 -> 0.3 across the
// ghost window, linear 0.3 -> 0.1 across the old-ghost window, 0 once expired.
func opacityForAge(age time.Duration) float64 {
	switch {
	case age < ActiveWindow:
		return 1.0
	case age < GhostWindow:
		progress := float64(age-ActiveWindow) / float64(GhostWindow-ActiveWindow)

		return 1.0 - progress*(1.0-ghostFloor)
	case age < ExpiryWindow:
		progress := float64(age-GhostWindow) / float64(ExpiryWindow-GhostWindow)

		return ghostFloor - progress*(ghostFloor-oldGhostFloor)
	default:
		return 0
	}
}

// Expired reports whether the pin is past the retention ceiling at now.
func Expired(pin *entity.Pin, now time.Time) bool {
	return Compute(pin, now).Status == StatusExpired
}
