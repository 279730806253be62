package geo

import (
	"testing"

	"pindrop/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		vp      repository.Viewport
		wantErr bool
	}{
		{"valid box", repository.Viewport{North: 26, South: 25, East: 122, West: 121}, false},
		{"spans the equator", repository.Viewport{North: 1, South: -1, East: 1, West: -1}, false},
		{"north below south", repository.Viewport{North: 25, South: 26, East: 122, West: 121}, true},
		{"north equals south", repository.Viewport{North: 25, South: 25, East: 122, West: 121}, true},
		{"east below west", repository.Viewport{North: 26, South: 25, East: 121, West: 122}, true},
		{"latitude out of range", repository.Viewport{North: 91, South: 25, East: 122, West: 121}, true},
		{"longitude out of range", repository.Viewport{North: 26, South: 25, East: 181, West: 121}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.vp)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContains_HalfOpenEdges(t *testing.T) {
	vp := repository.Viewport{North: 26, South: 25, East: 122, West: 121}

	assert.True(t, Contains(vp, 25.5, 121.5))

	// South and west edges belong to this viewport.
	assert.True(t, Contains(vp, 25.0, 121.5))
	assert.True(t, Contains(vp, 25.5, 121.0))

	// North and east edges belong to the neighbour.
	assert.False(t, Contains(vp, 26.0, 121.5))
	assert.False(t, Contains(vp, 25.5, 122.0))

	assert.False(t, Contains(vp, 24.9, 121.5))
	assert.False(t, Contains(vp, 25.5, 122.1))
}
