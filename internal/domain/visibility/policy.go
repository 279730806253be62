// Package visibility decides whether a pin is disclosed to a viewer and at
// what coordinate precision. It is a pure view-time projection: the stored pin
// is never mutated, and the same inputs always produce the same output.
package visibility

import (
	"math"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// Precision is the coordinate precision granted to a viewer.
type Precision string

const (
	// PrecisionFull exposes the stored coordinates unchanged.
	PrecisionFull Precision = "full"
	// PrecisionFuzzy exposes coordinates snapped to the privacy grid.
	PrecisionFuzzy Precision = "fuzzy"
)

// fuzzCellDegrees is the privacy grid cell size. 0.01 degrees is roughly
// 1.1 km of latitude, shrinking with cos(lat) in longitude, which lands in the
// coarse "neighborhood, not doorstep" range the levels promise.
const fuzzCellDegrees = 0.01

// Disclosure is the outcome of a policy check. When Disclosed is false the
// pin must be dropped entirely; viewers must not learn hidden pins exist.
type Disclosure struct {
	Disclosed bool
	Precision Precision
	Latitude  float64
	Longitude float64
	Boosted   bool // Beacon pins sort ahead of everything else.
}

// hidden is the zero disclosure.
var hidden = Disclosure{}

// Disclose applies the owner's visibility level and the viewer-owner
// relationship to a pin. The owner always sees their own pin in full.
func Disclose(pin *entity.Pin, viewerID uuid.UUID, level entity.VisibilityLevel, conn entity.ConnectionStatus) Disclosure {
	if viewerID == pin.OwnerID {
		return full(pin, level == entity.VisibilityBeacon)
	}

	switch level {
	case entity.VisibilityGhost:
		return hidden

	case entity.VisibilityCircles:
		if conn.IsConnected() {
			return full(pin, false)
		}

		return hidden

	case entity.VisibilityFuzzy:
		return fuzzy(pin)

	case entity.VisibilitySocial:
		if conn.IsConnected() {
			return full(pin, false)
		}
		// Non-connections still see the pin, just coarsened.
		return fuzzy(pin)

	case entity.VisibilityDiscoverable:
		return full(pin, false)

	case entity.VisibilityBeacon:
		return full(pin, true)

	default:
		// Unknown levels fail closed.
		return hidden
	}
}

func full(pin *entity.Pin, boosted bool) Disclosure {
	return Disclosure{
		Disclosed: true,
		Precision: PrecisionFull,
		Latitude:  pin.Latitude,
		Longitude: pin.Longitude,
		Boosted:   boosted,
	}
}

func fuzzy(pin *entity.Pin) Disclosure {
	return Disclosure{
		Disclosed: true,
		Precision: PrecisionFuzzy,
		Latitude:  FuzzCoordinate(pin.Latitude),
		Longitude: FuzzCoordinate(pin.Longitude),
	}
}

// FuzzCoordinate snaps a coordinate to the center of its privacy grid cell.
// The snap is a pure function of the input, so a pin queried repeatedly lands
// on the identical point and its marker never wanders between polls.
func FuzzCoordinate(value float64) float64 {
	return math.Floor(value/fuzzCellDegrees)*fuzzCellDegrees + fuzzCellDegrees/2
}
