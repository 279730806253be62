package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	"pindrop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reaperService struct {
	pinRepo        repository.PinRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// ReaperServiceParams holds dependencies for ReaperService, injected by Fx.
type ReaperServiceParams struct {
	fx.In

	PinRepo        repository.PinRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewReaperService creates a new reaper service instance
func NewReaperService(params ReaperServiceParams) usecase.ReaperUsecase {
	return &reaperService{
		pinRepo:        params.PinRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// Sweep hard-deletes pins whose decay anchor predates the retention ceiling.
// Expired pins are already invisible to every read path, so the sweep only
// reclaims storage; running it twice in a row deletes nothing the second time.
func (s *reaperService) Sweep(ctx context.Context) (int64, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	cutoff := time.Now().Add(-presence.ExpiryWindow)

	deleted, err := s.pinRepo.DeletePinsOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired pins")
	}

	if deleted == 0 {
		logger.Debug("Reaper sweep found nothing to delete")

		return 0, nil
	}

	logger.Info("Reaper sweep completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)

	event := &service.PinEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: service.PinEventReaped,
		Count:     deleted,
	}
	if err := s.eventPublisher.PublishPinEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish reap event",
			slog.Any("error", err),
		)
	}

	return deleted, nil
}
