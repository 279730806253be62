package repository

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// VisibilityRepository defines the interface for per-user visibility settings.
type VisibilityRepository interface {
	// GetLevel retrieves the user's visibility level. Users without a stored
	// setting fall back to entity.DefaultVisibilityLevel; this is not an error.
	GetLevel(ctx context.Context, userID uuid.UUID) (entity.VisibilityLevel, error)

	// GetLevels retrieves visibility levels for a batch of users in one round
	// trip. Missing users are filled with the default level.
	GetLevels(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.VisibilityLevel, error)

	// SetLevel upserts the user's visibility level. Takes effect on the next
	// query; nothing is cached server-side.
	SetLevel(ctx context.Context, userID uuid.UUID, level entity.VisibilityLevel) error
}
