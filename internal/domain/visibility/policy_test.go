package visibility

import (
	"testing"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPin(ownerID uuid.UUID) *entity.Pin {
	return &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  25.03456,
		Longitude: 121.56789,
	}
}

func TestDisclose_OwnerAlwaysSeesFull(t *testing.T) {
	ownerID := uuid.New()
	pin := testPin(ownerID)

	for _, level := range []entity.VisibilityLevel{
		entity.VisibilityGhost, entity.VisibilityCircles, entity.VisibilityFuzzy,
		entity.VisibilitySocial, entity.VisibilityDiscoverable, entity.VisibilityBeacon,
	} {
		d := Disclose(pin, ownerID, level, entity.ConnectionNone)
		require.True(t, d.Disclosed, "owner hidden from own pin at level %s", level)
		assert.Equal(t, PrecisionFull, d.Precision)
		assert.Equal(t, pin.Latitude, d.Latitude)
		assert.Equal(t, pin.Longitude, d.Longitude)
	}
}

func TestDisclose_Levels(t *testing.T) {
	ownerID := uuid.New()
	viewerID := uuid.New()
	pin := testPin(ownerID)

	tests := []struct {
		name          string
		level         entity.VisibilityLevel
		conn          entity.ConnectionStatus
		wantDisclosed bool
		wantPrecision Precision
		wantBoosted   bool
	}{
		{"ghost hides from connections too", entity.VisibilityGhost, entity.ConnectionConnected, false, "", false},
		{"circles shows connections", entity.VisibilityCircles, entity.ConnectionConnected, true, PrecisionFull, false},
		{"circles hides strangers", entity.VisibilityCircles, entity.ConnectionNone, false, "", false},
		{"circles hides pending", entity.VisibilityCircles, entity.ConnectionPending, false, "", false},
		{"fuzzy coarsens everyone", entity.VisibilityFuzzy, entity.ConnectionConnected, true, PrecisionFuzzy, false},
		{"social full for connections", entity.VisibilitySocial, entity.ConnectionConnected, true, PrecisionFull, false},
		{"social fuzzy for strangers", entity.VisibilitySocial, entity.ConnectionNone, true, PrecisionFuzzy, false},
		{"social fuzzy for pending", entity.VisibilitySocial, entity.ConnectionPending, true, PrecisionFuzzy, false},
		{"discoverable full for all", entity.VisibilityDiscoverable, entity.ConnectionNone, true, PrecisionFull, false},
		{"beacon full and boosted", entity.VisibilityBeacon, entity.ConnectionNone, true, PrecisionFull, true},
		{"unknown level fails closed", entity.VisibilityLevel("broadcast"), entity.ConnectionConnected, false, "", false},
		{"empty level fails closed", entity.VisibilityLevel(""), entity.ConnectionConnected, false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Disclose(pin, viewerID, tt.level, tt.conn)

			require.Equal(t, tt.wantDisclosed, d.Disclosed)
			if !tt.wantDisclosed {
				// Hidden pins leak nothing, not even coordinates.
				assert.Zero(t, d.Latitude)
				assert.Zero(t, d.Longitude)

				return
			}

			assert.Equal(t, tt.wantPrecision, d.Precision)
			assert.Equal(t, tt.wantBoosted, d.Boosted)

			if tt.wantPrecision == PrecisionFull {
				assert.Equal(t, pin.Latitude, d.Latitude)
			} else {
				assert.Equal(t, FuzzCoordinate(pin.Latitude), d.Latitude)
				assert.Equal(t, FuzzCoordinate(pin.Longitude), d.Longitude)
			}
		})
	}
}

func TestFuzzCoordinate(t *testing.T) {
	// Snap lands on the cell center.
	assert.InDelta(t, 25.035, FuzzCoordinate(25.03456), 1e-9)
	assert.InDelta(t, 121.565, FuzzCoordinate(121.56789), 1e-9)

	// Every point in a cell maps to the same center.
	assert.Equal(t, FuzzCoordinate(25.0301), FuzzCoordinate(25.0399))

	// Neighbouring cells stay distinct.
	assert.NotEqual(t, FuzzCoordinate(25.0399), FuzzCoordinate(25.0401))

	// Negative coordinates floor toward negative infinity, so the southern
	// hemisphere snaps just as deterministically.
	assert.InDelta(t, -33.865, FuzzCoordinate(-33.8688), 1e-9)
	assert.Equal(t, FuzzCoordinate(-33.8601), FuzzCoordinate(-33.8699))

	// Determinism: repeated calls never wander.
	for i := 0; i < 10; i++ {
		assert.Equal(t, FuzzCoordinate(25.03456), FuzzCoordinate(25.03456))
	}
}
