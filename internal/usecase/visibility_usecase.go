package usecase

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// VisibilityUsecase defines the interface for per-user visibility settings
type VisibilityUsecase interface {
	// GetLevel retrieves the caller's visibility level, defaulted when unset
	GetLevel(ctx context.Context, userID uuid.UUID) (entity.VisibilityLevel, error)

	// SetLevel updates the caller's visibility level, effective on the next query
	SetLevel(ctx context.Context, userID uuid.UUID, level string) (entity.VisibilityLevel, error)
}
