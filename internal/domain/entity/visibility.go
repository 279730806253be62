// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisibilityLevel controls who may see a user's pins and at what coordinate
// precision. Levels are ordered roughly from most private to most public.
type VisibilityLevel string

const (
	// VisibilityGhost hides the user's pins from everyone but themselves.
	VisibilityGhost VisibilityLevel = "ghost"
	// VisibilityCircles discloses pins to connected users only.
	VisibilityCircles VisibilityLevel = "circles"
	// VisibilityFuzzy discloses pins to anyone, at grid-snapped precision.
	VisibilityFuzzy VisibilityLevel = "fuzzy"
	// VisibilitySocial discloses full precision to connections and fuzzy
	// precision to everyone else.
	VisibilitySocial VisibilityLevel = "social"
	// VisibilityDiscoverable discloses full precision to all viewers.
	VisibilityDiscoverable VisibilityLevel = "discoverable"
	// VisibilityBeacon is discoverable plus a priority boost in map ordering.
	VisibilityBeacon VisibilityLevel = "beacon"
)

// DefaultVisibilityLevel applies to users who never touched their setting.
const DefaultVisibilityLevel = VisibilitySocial

// Valid reports whether the level is one of the known values.
func (l VisibilityLevel) Valid() bool {
	switch l {
	case VisibilityGhost, VisibilityCircles, VisibilityFuzzy,
		VisibilitySocial, VisibilityDiscoverable, VisibilityBeacon:
		return true
	}

	return false
}

// VisibilitySetting is the per-user visibility choice. It is mutable at any
// time and takes effect on the next query; no server-side caching of levels.
type VisibilitySetting struct {
	UserID    uuid.UUID       // The user this setting belongs to.
	Level     VisibilityLevel // The chosen disclosure level.
	UpdatedAt time.Time       // Timestamp of the last change.
}
