// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pindrop/config"
	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	"pindrop/internal/domain/visibility"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pinService struct {
	pinRepo        repository.PinRepository
	txManager      repository.TransactionManager
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// PinServiceParams holds dependencies for PinService, injected by Fx.
type PinServiceParams struct {
	fx.In

	PinRepo        repository.PinRepository
	TxManager      repository.TransactionManager
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPinService creates a new pin service instance
func NewPinService(params PinServiceParams) usecase.PinUsecase {
	return &pinService{
		pinRepo:        params.PinRepo,
		txManager:      params.TxManager,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

func (s *pinService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DropPin creates a current pin, schedules a future pin, or moves the owner's
// existing current pin in place.
func (s *pinService) DropPin(ctx context.Context, ownerID uuid.UUID, input *usecase.DropPinInput) (*usecase.DropPinResult, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	switch entity.PinType(input.PinType) {
	case entity.PinTypeCurrent:
		return s.dropCurrentPin(ctx, ownerID, input)
	case entity.PinTypeFuture:
		return s.dropFuturePin(ctx, ownerID, input)
	default:
		return nil, domainerrors.ErrInvalidPinType.WithDetails("pin_type must be current or future")
	}
}

// dropCurrentPin places or replaces the owner's single current pin. The
// find-then-write pair runs inside one transaction; the partial unique index
// on (owner_id) serializes concurrent drops, and the loser retries once
// against the winner's row so both callers observe the idempotent outcome.
// Transient conflicts (serialization failure, deadlock) retry the same way.
func (s *pinService) dropCurrentPin(ctx context.Context, ownerID uuid.UUID, input *usecase.DropPinInput) (*usecase.DropPinResult, error) {
	var result *usecase.DropPinResult

	for attempt := 0; attempt < 2; attempt++ {
		err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			return s.placeCurrentPin(ctx, f.NewPinRepository(), ownerID, input, &result)
		})
		if err == nil {
			break
		}
		if attempt == 0 && (errors.Is(err, repository.ErrCurrentPinExists) || errors.Is(err, repository.ErrTransientStorage)) {
			continue
		}

		return nil, err
	}

	switch {
	case result.Moved:
		s.publishEvent(ctx, service.PinEventMoved, result.Pin)
	case !result.AlreadyExists:
		s.publishEvent(ctx, service.PinEventCreated, result.Pin)
	}

	return result, nil
}

func (s *pinService) placeCurrentPin(ctx context.Context, pinRepo repository.PinRepository, ownerID uuid.UUID, input *usecase.DropPinInput, result **usecase.DropPinResult) error {
	now := time.Now()

	existing, err := pinRepo.FindCurrentPinByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrPinNotFound) {
		return errors.Wrap(err, "failed to find current pin by owner")
	}

	if existing != nil {
		if sameFuzzCell(existing.Latitude, existing.Longitude, input.Latitude, input.Longitude) {
			// Re-drop at the same grid location changes nothing.
			*result = &usecase.DropPinResult{
				Pin:           annotatePin(existing, now),
				AlreadyExists: true,
			}

			return nil
		}

		// Moving restarts the decay clock.
		existing.Latitude = input.Latitude
		existing.Longitude = input.Longitude
		existing.Description = input.Description
		existing.CreatedAt = now
		existing.UpdatedAt = now

		if err := pinRepo.UpdatePin(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to move current pin")
		}

		*result = &usecase.DropPinResult{
			Pin:   annotatePin(existing, now),
			Moved: true,
		}

		return nil
	}

	pin := &entity.Pin{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		PinType:     entity.PinTypeCurrent,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := pinRepo.CreatePin(ctx, pin); err != nil {
		// ErrCurrentPinExists propagates to trigger the retry.
		return err
	}

	*result = &usecase.DropPinResult{Pin: annotatePin(pin, now)}

	return nil
}

// dropFuturePin schedules a pin at a destination the owner plans to reach.
func (s *pinService) dropFuturePin(ctx context.Context, ownerID uuid.UUID, input *usecase.DropPinInput) (*usecase.DropPinResult, error) {
	now := time.Now()

	if input.ArrivalTime == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("arrival_time is required for future pins")
	}
	if !input.ArrivalTime.After(now) {
		return nil, domainerrors.ErrArrivalTimeInPast
	}

	maxFuture := s.config.PinsOrDefault().MaxFuturePins

	pin := &entity.Pin{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		PinType:     entity.PinTypeFuture,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ArrivalTime: input.ArrivalTime,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Count and insert share one transaction so two concurrent creations at
	// the capacity edge cannot both pass the check.
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		pinRepo := f.NewPinRepository()

		count, err := pinRepo.CountFuturePinsByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count future pins by owner")
		}
		if count >= int64(maxFuture) {
			return domainerrors.ErrFuturePinLimitReached
		}

		return errors.Wrap(pinRepo.CreatePin(ctx, pin), "failed to create future pin")
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrFuturePinLimitReached) {
			return nil, domainerrors.ErrFuturePinLimitReached
		}

		return nil, err
	}

	result := &usecase.DropPinResult{Pin: annotatePin(pin, now)}
	s.publishEvent(ctx, service.PinEventCreated, result.Pin)

	return result, nil
}

// DeletePin removes a pin owned by the caller.
func (s *pinService) DeletePin(ctx context.Context, ownerID, pinID uuid.UUID) error {
	pin, err := s.findLivePin(ctx, pinID)
	if err != nil {
		return err
	}
	if pin.OwnerID != ownerID {
		return domainerrors.ErrPinOwnershipViolation
	}

	if err := s.pinRepo.DeletePin(ctx, pinID); err != nil {
		if errors.Is(err, repository.ErrPinNotFound) {
			// Deleted concurrently; the outcome the caller wanted.
			return nil
		}

		return errors.Wrap(err, "failed to delete pin")
	}

	s.publishEvent(ctx, service.PinEventDeleted, &usecase.PinView{
		ID:        pin.ID,
		OwnerID:   pin.OwnerID,
		PinType:   pin.PinType,
		Latitude:  pin.Latitude,
		Longitude: pin.Longitude,
	})

	return nil
}

// ListOwnPins retrieves the caller's pins at full precision, expired pins
// filtered out.
func (s *pinService) ListOwnPins(ctx context.Context, ownerID uuid.UUID) ([]*usecase.PinView, error) {
	pins, err := s.pinRepo.FindPinsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pins by owner")
	}

	now := time.Now()
	views := make([]*usecase.PinView, 0, len(pins))
	for _, pin := range pins {
		if presence.Expired(pin, now) {
			continue
		}
		views = append(views, annotatePin(pin, now))
	}

	return views, nil
}

// GeneratePinShareQR generates a share QR code for a pin owned by the caller.
func (s *pinService) GeneratePinShareQR(ctx context.Context, ownerID, pinID uuid.UUID) ([]byte, error) {
	pin, err := s.findLivePin(ctx, pinID)
	if err != nil {
		return nil, err
	}
	if pin.OwnerID != ownerID {
		return nil, domainerrors.ErrPinOwnershipViolation
	}

	qrBytes, err := s.qrcodeService.GeneratePinShareQR(pinID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pin share QR")
	}

	return qrBytes, nil
}

// findLivePin loads a pin and hides expired ones behind not-found, so expired
// pins are indistinguishable from deleted ones.
func (s *pinService) findLivePin(ctx context.Context, pinID uuid.UUID) (*entity.Pin, error) {
	pin, err := s.pinRepo.FindPinByID(ctx, pinID)
	if err != nil {
		if errors.Is(err, repository.ErrPinNotFound) {
			return nil, domainerrors.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin by ID")
	}

	if presence.Expired(pin, time.Now()) {
		return nil, domainerrors.ErrPinNotFound
	}

	return pin, nil
}

func (s *pinService) publishEvent(ctx context.Context, eventType string, pin *usecase.PinView) {
	event := &service.PinEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventType: eventType,
		PinID:     pin.ID.String(),
		OwnerID:   pin.OwnerID.String(),
		PinType:   string(pin.PinType),
		Latitude:  pin.Latitude,
		Longitude: pin.Longitude,
	}

	if err := s.eventPublisher.PublishPinEvent(ctx, event); err != nil {
		s.loggerFrom(ctx).Warn("Failed to publish pin event",
			slog.String("event_type", eventType),
			slog.String("pin_id", event.PinID),
			slog.Any("error", err),
		)
	}
}

// --- Helpers shared across services ---

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domainerrors.ErrInvalidCoordinates
	}

	return nil
}

// sameFuzzCell reports whether two coordinates land in the same privacy grid
// cell, the granularity at which a current-pin re-drop counts as "same place".
func sameFuzzCell(lat1, lon1, lat2, lon2 float64) bool {
	return visibility.FuzzCoordinate(lat1) == visibility.FuzzCoordinate(lat2) &&
		visibility.FuzzCoordinate(lon1) == visibility.FuzzCoordinate(lon2)
}

// annotatePin builds the owner-facing view of a pin with derived lifecycle
// state. Future pins not yet arrived carry a countdown; arrived ones carry a
// time-since label instead.
func annotatePin(pin *entity.Pin, now time.Time) *usecase.PinView {
	view := &usecase.PinView{
		ID:          pin.ID,
		OwnerID:     pin.OwnerID,
		PinType:     pin.PinType,
		Latitude:    pin.Latitude,
		Longitude:   pin.Longitude,
		ArrivalTime: pin.ArrivalTime,
		Description: pin.Description,
		CreatedAt:   pin.CreatedAt,
		Lifecycle:   presence.Compute(pin, now),
	}

	if pin.IsFuture() && pin.ArrivalTime != nil {
		if pin.ArrivalTime.After(now) {
			countdown := presence.Classify(*pin.ArrivalTime, now)
			view.Countdown = &countdown
		} else {
			view.ArrivedLabel = presence.SinceLabel(*pin.ArrivalTime, now)
		}
	}

	return view
}
