package impl

import (
	"context"
	"testing"
	"time"

	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/service"
	mockRepo "pindrop/internal/mocks/repository"
	mockSvc "pindrop/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReaperService_Sweep(t *testing.T) {
	mockPinRepo := mockRepo.NewMockPinRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewReaperService(ReaperServiceParams{
		PinRepo:        mockPinRepo,
		EventPublisher: mockPublisher,
		Logger:         testLogger(),
	})

	ctx := context.Background()

	mockPinRepo.EXPECT().
		DeletePinsOlderThan(ctx, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, cutoff time.Time) {
			// The cutoff sits one retention window behind now.
			assert.InDelta(t, presence.ExpiryWindow.Hours(), time.Since(cutoff).Hours(), 0.01)
		}).
		Return(int64(42), nil)

	mockPublisher.EXPECT().
		PublishPinEvent(ctx, mock.AnythingOfType("*service.PinEvent")).
		Run(func(_ context.Context, event *service.PinEvent) {
			assert.Equal(t, service.PinEventReaped, event.EventType)
			assert.Equal(t, int64(42), event.Count)
		}).
		Return(nil)

	deleted, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), deleted)
}

func TestReaperService_Sweep_NothingToDelete(t *testing.T) {
	mockPinRepo := mockRepo.NewMockPinRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewReaperService(ReaperServiceParams{
		PinRepo:        mockPinRepo,
		EventPublisher: mockPublisher,
		Logger:         testLogger(),
	})

	ctx := context.Background()

	mockPinRepo.EXPECT().
		DeletePinsOlderThan(ctx, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	// No event is published for an empty sweep.
	deleted, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
