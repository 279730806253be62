package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pindrop/config"
	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	"pindrop/internal/domain/visibility"
	"pindrop/internal/infra/geo"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mapService struct {
	pinRepo           repository.PinRepository
	visibilityRepo    repository.VisibilityRepository
	connectionService service.ConnectionService
	profileService    service.ProfileService
	config            *config.Config
	logger            *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	PinRepo           repository.PinRepository
	VisibilityRepo    repository.VisibilityRepository
	ConnectionService service.ConnectionService
	ProfileService    service.ProfileService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewMapService creates a new map service instance
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	return &mapService{
		pinRepo:           params.PinRepo,
		visibilityRepo:    params.VisibilityRepo,
		connectionService: params.ConnectionService,
		profileService:    params.ProfileService,
		config:            params.Config,
		logger:            params.Logger,
	}
}

// QueryViewport retrieves the pins visible to the viewer inside a viewport,
// optionally clustered for the request zoom.
func (s *mapService) QueryViewport(ctx context.Context, viewerID uuid.UUID, input *usecase.ViewportQueryInput) (*usecase.ViewportResult, error) {
	if err := geo.Validate(input.Viewport); err != nil {
		return nil, domainerrors.ErrInvalidViewport.WithDetails(err.Error())
	}

	now := time.Now()
	minAnchor := now.Add(-presence.ExpiryWindow)

	pins, err := s.pinRepo.FindPinsInViewport(ctx, input.Viewport, minAnchor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pins in viewport")
	}

	disclosed, err := s.discloseAll(ctx, viewerID, pins)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.MapPinView, 0, len(disclosed))
	for _, d := range disclosed {
		if input.Mode != "" && (d.owner == nil || d.owner.Mode != input.Mode) {
			continue
		}
		views = append(views, s.mapPinView(d, now))
	}

	sortMapPins(views)

	result := &usecase.ViewportResult{Pins: views}

	clustering := s.config.ClusteringOrDefault()
	if input.Cluster && input.Zoom <= clustering.MaxZoom {
		result = clusterResult(views, input.Zoom, clustering.RadiusPx)
	}

	return result, nil
}

// IncomingVisitors aggregates disclosed future pins arriving in the viewport
// within the horizon, bucketed by calendar day in UTC.
func (s *mapService) IncomingVisitors(ctx context.Context, viewerID uuid.UUID, input *usecase.IncomingInput) (*usecase.IncomingResult, error) {
	if err := geo.Validate(input.Viewport); err != nil {
		return nil, domainerrors.ErrInvalidViewport.WithDetails(err.Error())
	}

	pinsCfg := s.config.PinsOrDefault()
	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = pinsCfg.DefaultHorizonDays
	}
	if horizon > pinsCfg.MaxHorizonDays {
		horizon = pinsCfg.MaxHorizonDays
	}

	now := time.Now()
	until := now.Add(time.Duration(horizon) * 24 * time.Hour)

	pins, err := s.pinRepo.FindFuturePinsInViewport(ctx, input.Viewport, now, until)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find future pins in viewport")
	}

	disclosed, err := s.discloseAll(ctx, viewerID, pins)
	if err != nil {
		return nil, err
	}

	result := &usecase.IncomingResult{
		Today:    []*usecase.IncomingPinView{},
		Tomorrow: []*usecase.IncomingPinView{},
		ThisWeek: []*usecase.IncomingPinView{},
	}

	// Bucketing is calendar-date based, location independent. The repository
	// returns pins ordered by arrival then creation, so bucket order is stable.
	today := now.UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	for _, d := range disclosed {
		if d.pin.ArrivalTime == nil {
			continue
		}

		view := &usecase.IncomingPinView{
			ID:          d.pin.ID,
			OwnerID:     d.pin.OwnerID,
			Latitude:    d.disclosure.Latitude,
			Longitude:   d.disclosure.Longitude,
			Precision:   d.disclosure.Precision,
			ArrivalTime: *d.pin.ArrivalTime,
			Countdown:   presence.Classify(*d.pin.ArrivalTime, now),
			Owner:       d.owner,
		}

		arrivalDate := d.pin.ArrivalTime.UTC().Truncate(24 * time.Hour)
		switch {
		case arrivalDate.Equal(today):
			result.Today = append(result.Today, view)
		case arrivalDate.Equal(tomorrow):
			result.Tomorrow = append(result.Tomorrow, view)
		default:
			result.ThisWeek = append(result.ThisWeek, view)
		}
	}

	return result, nil
}

// disclosedPin pairs a candidate pin with its resolved disclosure and owner
// annotation. Pins the viewer may not see are already dropped.
type disclosedPin struct {
	pin        *entity.Pin
	disclosure visibility.Disclosure
	owner      *usecase.OwnerView
}

// discloseAll resolves visibility levels, connection statuses, and profiles
// for all candidate owners in batch, then applies the disclosure policy.
func (s *mapService) discloseAll(ctx context.Context, viewerID uuid.UUID, pins []*entity.Pin) ([]*disclosedPin, error) {
	if len(pins) == 0 {
		return nil, nil
	}

	ownerIDs := uniqueOwnerIDs(pins)

	levels, err := s.visibilityRepo.GetLevels(ctx, ownerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get visibility levels")
	}

	conns, err := s.connectionService.Statuses(ctx, viewerID, ownerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get connection statuses")
	}

	profiles, err := s.profileService.Summaries(ctx, ownerIDs)
	if err != nil {
		// Profiles are display-only; map queries survive their absence.
		s.loggerFrom(ctx).Warn("Failed to load owner profiles",
			slog.Any("error", err),
		)
		profiles = map[uuid.UUID]*entity.ProfileSummary{}
	}

	disclosed := make([]*disclosedPin, 0, len(pins))
	for _, pin := range pins {
		d := visibility.Disclose(pin, viewerID, levels[pin.OwnerID], conns[pin.OwnerID])
		if !d.Disclosed {
			continue
		}

		disclosed = append(disclosed, &disclosedPin{
			pin:        pin,
			disclosure: d,
			owner:      ownerView(profiles[pin.OwnerID]),
		})
	}

	return disclosed, nil
}

func (s *mapService) mapPinView(d *disclosedPin, now time.Time) *usecase.MapPinView {
	view := &usecase.MapPinView{
		ID:          d.pin.ID,
		OwnerID:     d.pin.OwnerID,
		PinType:     string(d.pin.PinType),
		Latitude:    d.disclosure.Latitude,
		Longitude:   d.disclosure.Longitude,
		Precision:   d.disclosure.Precision,
		Boosted:     d.disclosure.Boosted,
		ArrivalTime: d.pin.ArrivalTime,
		Description: d.pin.Description,
		Lifecycle:   presence.Compute(d.pin, now),
		Owner:       d.owner,
	}

	if d.pin.IsFuture() && d.pin.ArrivalTime != nil {
		if d.pin.ArrivalTime.After(now) {
			countdown := presence.Classify(*d.pin.ArrivalTime, now)
			view.Countdown = &countdown
		} else {
			view.ArrivedLabel = presence.SinceLabel(*d.pin.ArrivalTime, now)
		}
	}

	return view
}

func (s *mapService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// sortMapPins orders boosted (beacon) pins first, then by pin ID ascending so
// repeated queries over the same data return the same order.
func sortMapPins(views []*usecase.MapPinView) {
	sort.SliceStable(views, func(a, b int) bool {
		if views[a].Boosted != views[b].Boosted {
			return views[a].Boosted
		}

		return views[a].ID.String() < views[b].ID.String()
	})
}

// clusterResult merges nearby pins into markers for the request zoom. Groups
// of one stay individual pins; only multi-pin groups become clusters.
func clusterResult(views []*usecase.MapPinView, zoom int, radiusPx float64) *usecase.ViewportResult {
	points := make([]geo.Point, len(views))
	for i, v := range views {
		points[i] = geo.Point{ID: v.ID, Lat: v.Latitude, Lon: v.Longitude}
	}

	groups := geo.ClusterByZoom(points, maptile.Zoom(zoom), radiusPx)

	result := &usecase.ViewportResult{
		Pins:      []*usecase.MapPinView{},
		Clusters:  []*usecase.ClusterView{},
		Clustered: true,
	}

	for _, g := range groups {
		if g.Count == 1 {
			result.Pins = append(result.Pins, views[g.Indexes[0]])

			continue
		}

		result.Clusters = append(result.Clusters, &usecase.ClusterView{
			Latitude:   g.CenterLat,
			Longitude:  g.CenterLon,
			Count:      g.Count,
			SizeBucket: g.SizeBucket,
		})
	}

	sortMapPins(result.Pins)

	return result
}

func uniqueOwnerIDs(pins []*entity.Pin) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(pins))
	ownerIDs := make([]uuid.UUID, 0, len(pins))
	for _, pin := range pins {
		if _, ok := seen[pin.OwnerID]; ok {
			continue
		}
		seen[pin.OwnerID] = struct{}{}
		ownerIDs = append(ownerIDs, pin.OwnerID)
	}

	return ownerIDs
}

func ownerView(profile *entity.ProfileSummary) *usecase.OwnerView {
	if profile == nil {
		return nil
	}

	return &usecase.OwnerView{
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		Interests: profile.Interests,
		Mode:      profile.Mode,
	}
}
