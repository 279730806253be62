package impl

import (
	"context"
	"testing"
	"time"

	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/visibility"
	mockRepo "pindrop/internal/mocks/repository"
	mockSvc "pindrop/internal/mocks/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapServiceMocks struct {
	pinRepo        *mockRepo.MockPinRepository
	visibilityRepo *mockRepo.MockVisibilityRepository
	connections    *mockSvc.MockConnectionService
	profiles       *mockSvc.MockProfileService
}

func newMapService(t *testing.T) (usecase.MapUsecase, *mapServiceMocks) {
	m := &mapServiceMocks{
		pinRepo:        mockRepo.NewMockPinRepository(t),
		visibilityRepo: mockRepo.NewMockVisibilityRepository(t),
		connections:    mockSvc.NewMockConnectionService(t),
		profiles:       mockSvc.NewMockProfileService(t),
	}

	svc := NewMapService(MapServiceParams{
		PinRepo:           m.pinRepo,
		VisibilityRepo:    m.visibilityRepo,
		ConnectionService: m.connections,
		ProfileService:    m.profiles,
		Config:            testConfig(),
		Logger:            testLogger(),
	})

	return svc, m
}

func testViewport() repository.Viewport {
	return repository.Viewport{North: 26.0, South: 25.0, East: 122.0, West: 121.0}
}

func currentPin(ownerID uuid.UUID, lat, lon float64) *entity.Pin {
	return &entity.Pin{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		PinType:   entity.PinTypeCurrent,
		Latitude:  lat,
		Longitude: lon,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestMapService_QueryViewport_DisclosurePolicy(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	ghostOwner := uuid.New()
	circlesOwner := uuid.New()
	fuzzyOwner := uuid.New()
	beaconOwner := uuid.New()

	pins := []*entity.Pin{
		currentPin(ghostOwner, 25.1, 121.1),
		currentPin(circlesOwner, 25.2, 121.2),
		currentPin(fuzzyOwner, 25.3456, 121.3456),
		currentPin(beaconOwner, 25.4, 121.4),
	}

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return(pins, nil)

	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			ghostOwner:   entity.VisibilityGhost,
			circlesOwner: entity.VisibilityCircles,
			fuzzyOwner:   entity.VisibilityFuzzy,
			beaconOwner:  entity.VisibilityBeacon,
		}, nil)

	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)

	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)

	// Ghost owner is dropped entirely; an unconnected viewer also never sees
	// a circles pin. Only the fuzzy and beacon pins survive.
	require.Len(t, result.Pins, 2)

	// Beacon sorts ahead of everything else.
	assert.True(t, result.Pins[0].Boosted)
	assert.Equal(t, beaconOwner, result.Pins[0].OwnerID)
	assert.Equal(t, visibility.PrecisionFull, result.Pins[0].Precision)

	fuzzyView := result.Pins[1]
	assert.Equal(t, fuzzyOwner, fuzzyView.OwnerID)
	assert.Equal(t, visibility.PrecisionFuzzy, fuzzyView.Precision)
	assert.InDelta(t, visibility.FuzzCoordinate(25.3456), fuzzyView.Latitude, 1e-9)
	assert.InDelta(t, visibility.FuzzCoordinate(121.3456), fuzzyView.Longitude, 1e-9)
	// The snapped point is never the stored point.
	assert.NotEqual(t, 25.3456, fuzzyView.Latitude)
}

func TestMapService_QueryViewport_SocialDegradesForStrangers(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	friendOwner := uuid.New()
	strangerOwner := uuid.New()

	pins := []*entity.Pin{
		currentPin(friendOwner, 25.1234, 121.1234),
		currentPin(strangerOwner, 25.5678, 121.5678),
	}

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return(pins, nil)

	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			friendOwner:   entity.VisibilitySocial,
			strangerOwner: entity.VisibilitySocial,
		}, nil)

	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{
			friendOwner:   entity.ConnectionConnected,
			strangerOwner: entity.ConnectionNone,
		}, nil)

	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)
	require.Len(t, result.Pins, 2)

	byOwner := map[uuid.UUID]*usecase.MapPinView{}
	for _, v := range result.Pins {
		byOwner[v.OwnerID] = v
	}

	assert.Equal(t, visibility.PrecisionFull, byOwner[friendOwner].Precision)
	assert.InDelta(t, 25.1234, byOwner[friendOwner].Latitude, 1e-9)

	assert.Equal(t, visibility.PrecisionFuzzy, byOwner[strangerOwner].Precision)
	assert.InDelta(t, visibility.FuzzCoordinate(25.5678), byOwner[strangerOwner].Latitude, 1e-9)
}

func TestMapService_QueryViewport_OwnerSeesOwnGhostPin(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	pin := currentPin(viewerID, 25.1, 121.1)

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return([]*entity.Pin{pin}, nil)

	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			viewerID: entity.VisibilityGhost,
		}, nil)

	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)

	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)
	require.Len(t, result.Pins, 1)
	assert.Equal(t, visibility.PrecisionFull, result.Pins[0].Precision)
	assert.InDelta(t, 25.1, result.Pins[0].Latitude, 1e-9)
}

func TestMapService_QueryViewport_ModeFilter(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	datingOwner := uuid.New()
	friendsOwner := uuid.New()
	unknownOwner := uuid.New()

	pins := []*entity.Pin{
		currentPin(datingOwner, 25.1, 121.1),
		currentPin(friendsOwner, 25.2, 121.2),
		currentPin(unknownOwner, 25.3, 121.3),
	}

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return(pins, nil)

	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			datingOwner:  entity.VisibilityDiscoverable,
			friendsOwner: entity.VisibilityDiscoverable,
			unknownOwner: entity.VisibilityDiscoverable,
		}, nil)

	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)

	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{
			datingOwner:  {UserID: datingOwner, Name: "A", Mode: "dating"},
			friendsOwner: {UserID: friendsOwner, Name: "B", Mode: "friends"},
			// unknownOwner has no profile; mode filtering drops it.
		}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
		Mode:     "dating",
	})
	require.NoError(t, err)
	require.Len(t, result.Pins, 1)
	assert.Equal(t, datingOwner, result.Pins[0].OwnerID)
	require.NotNil(t, result.Pins[0].Owner)
	assert.Equal(t, "dating", result.Pins[0].Owner.Mode)
}

func TestMapService_QueryViewport_Clustering(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	ownerA := uuid.New()
	ownerB := uuid.New()
	ownerC := uuid.New()

	// A and B sit a few dozen meters apart; C is far off in the corner.
	pins := []*entity.Pin{
		currentPin(ownerA, 25.5000, 121.5000),
		currentPin(ownerB, 25.5002, 121.5002),
		currentPin(ownerC, 25.9500, 121.9500),
	}

	levels := map[uuid.UUID]entity.VisibilityLevel{
		ownerA: entity.VisibilityDiscoverable,
		ownerB: entity.VisibilityDiscoverable,
		ownerC: entity.VisibilityDiscoverable,
	}

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return(pins, nil)
	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(levels, nil)
	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)
	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
		Zoom:     10,
		Cluster:  true,
	})
	require.NoError(t, err)
	assert.True(t, result.Clustered)

	// A and B merge into one marker; C stays an individual pin.
	require.Len(t, result.Clusters, 1)
	assert.Equal(t, 2, result.Clusters[0].Count)
	assert.Equal(t, 0, result.Clusters[0].SizeBucket)
	assert.InDelta(t, 25.5001, result.Clusters[0].Latitude, 0.001)

	require.Len(t, result.Pins, 1)
	assert.Equal(t, ownerC, result.Pins[0].OwnerID)
}

func TestMapService_QueryViewport_NoClusteringAboveMaxZoom(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	ownerA := uuid.New()
	ownerB := uuid.New()

	pins := []*entity.Pin{
		currentPin(ownerA, 25.5000, 121.5000),
		currentPin(ownerB, 25.5002, 121.5002),
	}

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return(pins, nil)
	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			ownerA: entity.VisibilityDiscoverable,
			ownerB: entity.VisibilityDiscoverable,
		}, nil)
	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)
	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
		Zoom:     17, // Above the clustering ceiling.
		Cluster:  true,
	})
	require.NoError(t, err)
	assert.False(t, result.Clustered)
	assert.Len(t, result.Pins, 2)
	assert.Empty(t, result.Clusters)
}

func TestMapService_QueryViewport_InvalidViewport(t *testing.T) {
	svc, _ := newMapService(t)

	_, err := svc.QueryViewport(context.Background(), uuid.New(), &usecase.ViewportQueryInput{
		Viewport: repository.Viewport{North: 25.0, South: 26.0, East: 122.0, West: 121.0},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_VIEWPORT", appErr.ErrorCode())
}

func TestMapService_QueryViewport_FuturePinFraming(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	upcomingOwner := uuid.New()
	arrivedOwner := uuid.New()

	upcoming := futurePin(upcomingOwner, 25.1, 121.1, time.Now().Add(26*time.Hour))
	arrived := futurePin(arrivedOwner, 25.2, 121.2, time.Now().Add(-2*time.Hour))

	m.pinRepo.EXPECT().
		FindPinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time")).
		Return([]*entity.Pin{upcoming, arrived}, nil)
	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			upcomingOwner: entity.VisibilityDiscoverable,
			arrivedOwner:  entity.VisibilityDiscoverable,
		}, nil)
	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)
	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.QueryViewport(ctx, viewerID, &usecase.ViewportQueryInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)
	require.Len(t, result.Pins, 2)

	views := map[uuid.UUID]*usecase.MapPinView{}
	for _, view := range result.Pins {
		views[view.OwnerID] = view
	}

	// A pin still on its way carries the countdown.
	upcomingView := views[upcomingOwner]
	require.NotNil(t, upcomingView.Countdown)
	assert.Equal(t, "1d", upcomingView.Countdown.Text)
	assert.Empty(t, upcomingView.ArrivedLabel)

	// Once the arrival passes, the countdown gives way to the since label.
	arrivedView := views[arrivedOwner]
	assert.Nil(t, arrivedView.Countdown)
	assert.Equal(t, "2h ago", arrivedView.ArrivedLabel)
}

func futurePin(ownerID uuid.UUID, lat, lon float64, arrival time.Time) *entity.Pin {
	return &entity.Pin{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		PinType:     entity.PinTypeFuture,
		Latitude:    lat,
		Longitude:   lon,
		ArrivalTime: &arrival,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestMapService_IncomingVisitors_Bucketing(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	// Buckets follow the UTC calendar date, not 24-hour offsets from now.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	todayArrival := today.Add(23 * time.Hour)
	tomorrowArrival := today.Add(24*time.Hour + 2*time.Hour)
	dayAfterArrival := today.Add(2*24*time.Hour + 6*time.Hour)
	weekArrival := today.Add(5*24*time.Hour + 12*time.Hour)

	owner := uuid.New()
	pins := []*entity.Pin{
		futurePin(owner, 25.1, 121.1, todayArrival),
		futurePin(owner, 25.2, 121.2, tomorrowArrival),
		futurePin(owner, 25.3, 121.3, dayAfterArrival),
		futurePin(owner, 25.4, 121.4, weekArrival),
	}

	m.pinRepo.EXPECT().
		FindFuturePinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(pins, nil)
	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			owner: entity.VisibilityDiscoverable,
		}, nil)
	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)
	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.IncomingVisitors(ctx, viewerID, &usecase.IncomingInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)
	assert.Len(t, result.Today, 1)
	assert.Len(t, result.Tomorrow, 1)
	// Anything past tomorrow falls into the week bucket, even when it is
	// under 48 hours away on the clock.
	assert.Len(t, result.ThisWeek, 2)

	assert.Equal(t, todayArrival.Unix(), result.Today[0].ArrivalTime.Unix())
	assert.Equal(t, tomorrowArrival.Unix(), result.Tomorrow[0].ArrivalTime.Unix())
}

func TestMapService_IncomingVisitors_GhostOwnersHidden(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	ghostOwner := uuid.New()
	openOwner := uuid.New()
	arrival := time.Now().Add(26 * time.Hour)

	pins := []*entity.Pin{
		futurePin(ghostOwner, 25.1, 121.1, arrival),
		futurePin(openOwner, 25.2, 121.2, arrival),
	}

	m.pinRepo.EXPECT().
		FindFuturePinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(pins, nil)
	m.visibilityRepo.EXPECT().
		GetLevels(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.VisibilityLevel{
			ghostOwner: entity.VisibilityGhost,
			openOwner:  entity.VisibilityDiscoverable,
		}, nil)
	m.connections.EXPECT().
		Statuses(ctx, viewerID, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]entity.ConnectionStatus{}, nil)
	m.profiles.EXPECT().
		Summaries(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]*entity.ProfileSummary{}, nil)

	result, err := svc.IncomingVisitors(ctx, viewerID, &usecase.IncomingInput{
		Viewport: testViewport(),
	})
	require.NoError(t, err)

	total := len(result.Today) + len(result.Tomorrow) + len(result.ThisWeek)
	require.Equal(t, 1, total)
}

func TestMapService_IncomingVisitors_HorizonClamped(t *testing.T) {
	svc, m := newMapService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	m.pinRepo.EXPECT().
		FindFuturePinsInViewport(ctx, testViewport(), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ repository.Viewport, from, to time.Time) {
			assert.InDelta(t, float64(30*24), to.Sub(from).Hours(), 0.01)
		}).
		Return([]*entity.Pin{}, nil)

	result, err := svc.IncomingVisitors(ctx, viewerID, &usecase.IncomingInput{
		Viewport:    testViewport(),
		HorizonDays: 365,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Today)
	assert.Empty(t, result.Tomorrow)
	assert.Empty(t, result.ThisWeek)
}
