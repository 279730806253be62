package impl

import (
	"context"
	"log/slog"

	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type visibilityService struct {
	visibilityRepo repository.VisibilityRepository
	logger         *slog.Logger
}

// VisibilityServiceParams holds dependencies for VisibilityService, injected by Fx.
type VisibilityServiceParams struct {
	fx.In

	VisibilityRepo repository.VisibilityRepository
	Logger         *slog.Logger
}

// NewVisibilityService creates a new visibility service instance
func NewVisibilityService(params VisibilityServiceParams) usecase.VisibilityUsecase {
	return &visibilityService{
		visibilityRepo: params.VisibilityRepo,
		logger:         params.Logger,
	}
}

// GetLevel retrieves the caller's visibility level, defaulted when unset.
func (s *visibilityService) GetLevel(ctx context.Context, userID uuid.UUID) (entity.VisibilityLevel, error) {
	level, err := s.visibilityRepo.GetLevel(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to get visibility level")
	}

	return level, nil
}

// SetLevel updates the caller's visibility level. The new level applies on
// the very next map query; nothing is invalidated because nothing is cached.
func (s *visibilityService) SetLevel(ctx context.Context, userID uuid.UUID, level string) (entity.VisibilityLevel, error) {
	parsed := entity.VisibilityLevel(level)
	if !parsed.Valid() {
		return "", domainerrors.ErrInvalidVisibilityLevel.WithDetails("unknown level: " + level)
	}

	if err := s.visibilityRepo.SetLevel(ctx, userID, parsed); err != nil {
		return "", errors.Wrap(err, "failed to set visibility level")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Visibility level updated",
		slog.String("user_id", userID.String()),
		slog.String("level", level),
	)

	return parsed, nil
}
