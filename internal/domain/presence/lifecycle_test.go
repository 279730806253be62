package presence

import (
	"testing"
	"time"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinCreatedAt(createdAt time.Time) *entity.Pin {
	return &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		PinType:   entity.PinTypeCurrent,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func futurePinArriving(arrival time.Time) *entity.Pin {
	return &entity.Pin{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		PinType:     entity.PinTypeFuture,
		ArrivalTime: &arrival,
		CreatedAt:   arrival.Add(-24 * time.Hour),
	}
}

func TestCompute_CurrentPinDecay(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		age         time.Duration
		wantStatus  Status
		wantActive  bool
		wantOpacity float64
	}{
		{"just dropped", 0, StatusActive, true, 1.0},
		{"one hour old", time.Hour, StatusActive, true, 1.0},
		{"just inside active window", 23 * time.Hour, StatusActive, true, 1.0},
		{"just past active window", 25 * time.Hour, StatusGhost, false, -1},
		{"mid ghost", 4 * 24 * time.Hour, StatusGhost, false, -1},
		{"just past ghost window", 7*24*time.Hour + time.Hour, StatusOldGhost, false, -1},
		{"deep old ghost", 29 * 24 * time.Hour, StatusOldGhost, false, -1},
		{"at retention ceiling", 30 * 24 * time.Hour, StatusExpired, false, 0},
		{"long expired", 60 * 24 * time.Hour, StatusExpired, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pin := pinCreatedAt(now.Add(-tt.age))
			lc := Compute(pin, now)

			assert.Equal(t, tt.wantStatus, lc.Status)
			assert.Equal(t, tt.wantActive, lc.IsActive)
			assert.InDelta(t, tt.age.Hours(), lc.AgeHours, 0.001)
			if tt.wantOpacity >= 0 {
				assert.InDelta(t, tt.wantOpacity, lc.Opacity, 0.001)
			}
		})
	}
}

func TestCompute_OpacityCurve(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Exactly at the window edges.
	atActiveEdge := Compute(pinCreatedAt(now.Add(-ActiveWindow)), now)
	assert.InDelta(t, 1.0, atActiveEdge.Opacity, 0.001)

	atGhostEdge := Compute(pinCreatedAt(now.Add(-GhostWindow)), now)
	assert.InDelta(t, 0.3, atGhostEdge.Opacity, 0.001)

	// Halfway through the ghost window the fade is half done.
	midGhost := Compute(pinCreatedAt(now.Add(-(ActiveWindow+GhostWindow)/2)), now)
	assert.InDelta(t, 0.65, midGhost.Opacity, 0.001)

	// Monotonically non-increasing across the whole curve.
	prev := 1.1
	for age := time.Duration(0); age <= 31*24*time.Hour; age += time.Hour {
		lc := Compute(pinCreatedAt(now.Add(-age)), now)
		require.LessOrEqual(t, lc.Opacity, prev, "opacity rose at age %v", age)
		prev = lc.Opacity
	}
}

func TestCompute_FuturePinPhases(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Before arrival the pin is scheduled at full opacity, regardless of how
	// long ago it was created.
	scheduled := Compute(futurePinArriving(now.Add(48*time.Hour)), now)
	assert.Equal(t, StatusScheduled, scheduled.Status)
	assert.InDelta(t, 1.0, scheduled.Opacity, 0.001)
	assert.True(t, scheduled.IsActive)
	assert.Zero(t, scheduled.AgeHours)

	// Shortly after arrival the pin reads as recently arrived.
	justArrived := Compute(futurePinArriving(now.Add(-time.Hour)), now)
	assert.Equal(t, StatusRecentlyArrived, justArrived.Status)
	assert.True(t, justArrived.IsActive)

	// Past the grace period it is a plain active pin.
	settled := Compute(futurePinArriving(now.Add(-4*time.Hour)), now)
	assert.Equal(t, StatusActive, settled.Status)

	// Decay is anchored to the arrival time, not the creation time.
	ghosted := Compute(futurePinArriving(now.Add(-36*time.Hour)), now)
	assert.Equal(t, StatusGhost, ghosted.Status)
	assert.InDelta(t, 36, ghosted.AgeHours, 0.001)
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, Expired(pinCreatedAt(now.Add(-29*24*time.Hour)), now))
	assert.True(t, Expired(pinCreatedAt(now.Add(-30*24*time.Hour)), now))

	// A future pin expires from its arrival time.
	assert.False(t, Expired(futurePinArriving(now.Add(-29*24*time.Hour)), now))
	assert.True(t, Expired(futurePinArriving(now.Add(-31*24*time.Hour)), now))
}
