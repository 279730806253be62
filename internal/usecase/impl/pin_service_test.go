package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	mockRepo "pindrop/internal/mocks/repository"
	mockSvc "pindrop/internal/mocks/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Pins: &config.PinsConfig{
			MaxFuturePins:      5,
			DefaultHorizonDays: 7,
			MaxHorizonDays:     30,
		},
		Clustering: &config.ClusteringConfig{
			RadiusPx: 80.0,
			MaxZoom:  16,
		},
	}
}

type pinServiceMocks struct {
	pinRepo   *mockRepo.MockPinRepository
	txManager *mockRepo.MockTransactionManager
	qrService *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func newPinService(t *testing.T) (usecase.PinUsecase, *pinServiceMocks) {
	m := &pinServiceMocks{
		pinRepo:   mockRepo.NewMockPinRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		qrService: mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewPinService(PinServiceParams{
		PinRepo:        m.pinRepo,
		TxManager:      m.txManager,
		QRCodeService:  m.qrService,
		EventPublisher: m.publisher,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return svc, m
}

// expectTransaction wires the transaction manager mock to invoke the supplied
// function against a factory that hands out the pin repository mock.
func expectTransaction(t *testing.T, m *pinServiceMocks) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPinRepository().Return(m.pinRepo)

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestPinService_DropPin_NewCurrentPin(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(nil, repository.ErrPinNotFound)

	m.pinRepo.EXPECT().
		CreatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		Return(nil)

	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Run(func(_ context.Context, event *service.PinEvent) {
			assert.Equal(t, service.PinEventCreated, event.EventType)
			assert.Equal(t, ownerID.String(), event.OwnerID)
		}).
		Return(nil)

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.AlreadyExists)
	assert.False(t, result.Moved)
	assert.Equal(t, ownerID, result.Pin.OwnerID)
	assert.Equal(t, entity.PinTypeCurrent, result.Pin.PinType)
	assert.Equal(t, presence.StatusActive, result.Pin.Lifecycle.Status)
	assert.InDelta(t, 1.0, result.Pin.Lifecycle.Opacity, 0.001)
}

func TestPinService_DropPin_SameCellIsIdempotent(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	existing := &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  25.0335,
		Longitude: 121.5645,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		UpdatedAt: time.Now().Add(-2 * time.Hour),
	}

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(existing, nil)

	// A re-drop inside the same privacy grid cell writes nothing and
	// publishes nothing.
	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0338, // Same 0.01-degree cell as the existing pin.
		Longitude: 121.5641,
	})
	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.False(t, result.Moved)
	assert.Equal(t, existing.ID, result.Pin.ID)
}

func TestPinService_DropPin_MoveRestartsDecayClock(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	staleCreatedAt := time.Now().Add(-30 * time.Hour)
	existing := &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  25.0335,
		Longitude: 121.5645,
		CreatedAt: staleCreatedAt,
		UpdatedAt: staleCreatedAt,
	}

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(existing, nil)

	m.pinRepo.EXPECT().
		UpdatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		Return(nil)

	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Run(func(_ context.Context, event *service.PinEvent) {
			assert.Equal(t, service.PinEventMoved, event.EventType)
		}).
		Return(nil)

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0912,
		Longitude: 121.5598,
	})
	require.NoError(t, err)
	assert.True(t, result.Moved)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, existing.ID, result.Pin.ID)
	assert.InDelta(t, 25.0912, result.Pin.Latitude, 0.0001)
	// The move resets the creation timestamp, so the pin reads fully fresh
	// again instead of carrying the ghost state of its previous location.
	assert.True(t, result.Pin.CreatedAt.After(staleCreatedAt))
	assert.Equal(t, presence.StatusActive, result.Pin.Lifecycle.Status)
}

func TestPinService_DropPin_RetriesOnConcurrentInsert(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	winner := &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  25.0335,
		Longitude: 121.5645,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// First attempt loses the insert race.
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrCurrentPinExists).
		Once()

	// The retry refetches and finds the winner's row in the same cell.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPinRepository().Return(m.pinRepo)
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(winner, nil)

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, winner.ID, result.Pin.ID)
}

func TestPinService_DropPin_RetriesOnSerializationConflict(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	// First attempt aborts on a serialization conflict, surfaced by the
	// transaction manager as the transient storage sentinel.
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(fmt.Errorf("%w: could not serialize access due to concurrent update (SQLSTATE 40001)",
			repository.ErrTransientStorage)).
		Once()

	// The retry runs clean.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPinRepository().Return(m.pinRepo)
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(nil, repository.ErrPinNotFound)

	m.pinRepo.EXPECT().
		CreatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		Return(nil)

	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Return(nil)

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	require.NoError(t, err)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, ownerID, result.Pin.OwnerID)
}

func TestPinService_DropPin_SerializationConflictSurfacesAfterRetry(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()

	// Both attempts abort; the second failure is returned to the caller.
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(fmt.Errorf("%w: deadlock detected (SQLSTATE 40P01)", repository.ErrTransientStorage)).
		Twice()

	_, err := svc.DropPin(ctx, uuid.New(), &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	assert.ErrorIs(t, err, repository.ErrTransientStorage)
}

func TestPinService_DropPin_InvalidCoordinates(t *testing.T) {
	svc, _ := newPinService(t)
	ctx := context.Background()

	_, err := svc.DropPin(ctx, uuid.New(), &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  91.0,
		Longitude: 121.5645,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)

	_, err = svc.DropPin(ctx, uuid.New(), &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: -180.5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestPinService_DropPin_InvalidPinType(t *testing.T) {
	svc, _ := newPinService(t)

	_, err := svc.DropPin(context.Background(), uuid.New(), &usecase.DropPinInput{
		PinType:   "permanent",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PIN_TYPE", appErr.ErrorCode())
}

func TestPinService_DropPin_FuturePin(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	arrival := time.Now().Add(49 * time.Hour)

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		CountFuturePinsByOwner(ctx, ownerID).
		Return(int64(2), nil)

	m.pinRepo.EXPECT().
		CreatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		Return(nil)

	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Return(nil)

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:     "future",
		Latitude:    35.6762,
		Longitude:   139.6503,
		ArrivalTime: &arrival,
		Description: "Tokyo trip",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PinTypeFuture, result.Pin.PinType)
	assert.Equal(t, presence.StatusScheduled, result.Pin.Lifecycle.Status)
	require.NotNil(t, result.Pin.Countdown)
	assert.Equal(t, presence.UrgencyLater, result.Pin.Countdown.Urgency)
	assert.Equal(t, "2d", result.Pin.Countdown.Text)
}

func TestPinService_DropPin_FuturePinRequiresArrivalTime(t *testing.T) {
	svc, _ := newPinService(t)

	_, err := svc.DropPin(context.Background(), uuid.New(), &usecase.DropPinInput{
		PinType:   "future",
		Latitude:  35.6762,
		Longitude: 139.6503,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPinService_DropPin_FuturePinArrivalInPast(t *testing.T) {
	svc, _ := newPinService(t)
	arrival := time.Now().Add(-time.Minute)

	_, err := svc.DropPin(context.Background(), uuid.New(), &usecase.DropPinInput{
		PinType:     "future",
		Latitude:    35.6762,
		Longitude:   139.6503,
		ArrivalTime: &arrival,
	})
	assert.ErrorIs(t, err, domainerrors.ErrArrivalTimeInPast)
}

func TestPinService_DropPin_FuturePinLimitReached(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	arrival := time.Now().Add(24 * time.Hour)

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		CountFuturePinsByOwner(ctx, ownerID).
		Return(int64(5), nil)

	_, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:     "future",
		Latitude:    35.6762,
		Longitude:   139.6503,
		ArrivalTime: &arrival,
	})
	assert.ErrorIs(t, err, domainerrors.ErrFuturePinLimitReached)
}

func TestPinService_DeletePin_Success(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pinID := uuid.New()

	pin := &entity.Pin{
		ID:        pinID,
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  25.0335,
		Longitude: 121.5645,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(pin, nil)
	m.pinRepo.EXPECT().DeletePin(ctx, pinID).Return(nil)
	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Run(func(_ context.Context, event *service.PinEvent) {
			assert.Equal(t, service.PinEventDeleted, event.EventType)
			assert.Equal(t, pinID.String(), event.PinID)
		}).
		Return(nil)

	err := svc.DeletePin(ctx, ownerID, pinID)
	require.NoError(t, err)
}

func TestPinService_DeletePin_OwnershipViolation(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	pinID := uuid.New()

	pin := &entity.Pin{
		ID:        pinID,
		OwnerID:   uuid.New(),
		PinType:   entity.PinTypeCurrent,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(pin, nil)

	err := svc.DeletePin(ctx, uuid.New(), pinID)
	assert.ErrorIs(t, err, domainerrors.ErrPinOwnershipViolation)
}

func TestPinService_DeletePin_ExpiredPinReadsAsNotFound(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pinID := uuid.New()

	expired := &entity.Pin{
		ID:        pinID,
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
	}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(expired, nil)

	err := svc.DeletePin(ctx, ownerID, pinID)
	assert.ErrorIs(t, err, domainerrors.ErrPinNotFound)
}

func TestPinService_DeletePin_ConcurrentDeleteIsSuccess(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pinID := uuid.New()

	pin := &entity.Pin{
		ID:        pinID,
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(pin, nil)
	m.pinRepo.EXPECT().DeletePin(ctx, pinID).Return(repository.ErrPinNotFound)

	err := svc.DeletePin(ctx, ownerID, pinID)
	require.NoError(t, err)
}

func TestPinService_ListOwnPins_FiltersExpired(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	pastArrival := now.Add(-48 * time.Hour)
	pins := []*entity.Pin{
		{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			PinType:   entity.PinTypeCurrent,
			CreatedAt: now.Add(-time.Hour),
		},
		{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			PinType:     entity.PinTypeFuture,
			ArrivalTime: &pastArrival,
			CreatedAt:   now.Add(-72 * time.Hour),
		},
		{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			PinType:   entity.PinTypeCurrent,
			CreatedAt: now.Add(-45 * 24 * time.Hour), // Past retention, never shown.
		},
	}

	m.pinRepo.EXPECT().FindPinsByOwner(ctx, ownerID).Return(pins, nil)

	views, err := svc.ListOwnPins(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, presence.StatusActive, views[0].Lifecycle.Status)
	assert.Equal(t, presence.StatusGhost, views[1].Lifecycle.Status)
	assert.Equal(t, "2d ago", views[1].ArrivedLabel)
}

func TestPinService_GeneratePinShareQR(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	pinID := uuid.New()

	pin := &entity.Pin{
		ID:        pinID,
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	qrBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(pin, nil)
	m.qrService.EXPECT().GeneratePinShareQR(pinID).Return(qrBytes, nil)

	result, err := svc.GeneratePinShareQR(ctx, ownerID, pinID)
	require.NoError(t, err)
	assert.Equal(t, qrBytes, result)
}

func TestPinService_GeneratePinShareQR_NotOwner(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	pinID := uuid.New()

	pin := &entity.Pin{
		ID:        pinID,
		OwnerID:   uuid.New(),
		PinType:   entity.PinTypeCurrent,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	m.pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(pin, nil)

	_, err := svc.GeneratePinShareQR(ctx, uuid.New(), pinID)
	assert.ErrorIs(t, err, domainerrors.ErrPinOwnershipViolation)
}

func TestPinService_DropPin_PublishFailureDoesNotFailDrop(t *testing.T) {
	svc, m := newPinService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	expectTransaction(t, m)

	m.pinRepo.EXPECT().
		FindCurrentPinByOwner(ctx, ownerID).
		Return(nil, repository.ErrPinNotFound)

	m.pinRepo.EXPECT().
		CreatePin(ctx, mock.AnythingOfType("*entity.Pin")).
		Return(nil)

	m.publisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Return(errors.New("broker unavailable"))

	result, err := svc.DropPin(ctx, ownerID, &usecase.DropPinInput{
		PinType:   "current",
		Latitude:  25.0335,
		Longitude: 121.5645,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Pin)
}
