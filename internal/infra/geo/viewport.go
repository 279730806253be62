// Package geo contains the spatial computations behind the map queries:
// half-open viewport containment and zoom-aware pixel clustering. Everything
// here is pure; no state survives a request.
package geo

import (
	"pindrop/internal/domain/repository"
	"pindrop/internal/errors"
)

// Validate checks that a viewport is a well-formed region on the globe.
func Validate(vp repository.Viewport) error {
	if vp.North <= vp.South {
		return errors.New("viewport north must be greater than south")
	}
	if vp.East <= vp.West {
		return errors.New("viewport east must be greater than west")
	}
	if vp.North > 90 || vp.South < -90 {
		return errors.New("viewport latitude out of range")
	}
	if vp.East > 180 || vp.West < -180 {
		return errors.New("viewport longitude out of range")
	}

	return nil
}

// Contains reports whether a coordinate falls inside the half-open box
// [south, north) x [west, east). Pins exactly on the north or east edge
// belong to the neighbouring viewport, never to both.
func Contains(vp repository.Viewport, lat, lon float64) bool {
	return lat >= vp.South && lat < vp.North &&
		lon >= vp.West && lon < vp.East
}
