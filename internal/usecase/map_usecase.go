package usecase

import (
	"context"
	"time"

	"pindrop/internal/domain/presence"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/visibility"

	"github.com/google/uuid"
)

// ViewportQueryInput carries the map query parameters. The viewport is
// half-open: pins on the north or east edge belong to the next viewport.
type ViewportQueryInput struct {
	Viewport repository.Viewport
	Zoom     int
	Cluster  bool
	Mode     string // Optional owner-mode filter, e.g. "social". Empty means all.
}

// OwnerView is the display annotation attached to a disclosed pin. Nil when
// the profile service does not know the owner.
type OwnerView struct {
	Name      string   `json:"name"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Mode      string   `json:"mode,omitempty"`
}

// MapPinView is one disclosed pin as seen by the viewer. Coordinates are
// already coarsened when the owner's level grants only fuzzy precision.
type MapPinView struct {
	ID           uuid.UUID            `json:"id"`
	OwnerID      uuid.UUID            `json:"owner_id"`
	PinType      string               `json:"pin_type"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Precision    visibility.Precision `json:"precision"`
	Boosted      bool                 `json:"boosted,omitempty"`
	ArrivalTime  *time.Time           `json:"arrival_time,omitempty"`
	Description  string               `json:"description,omitempty"`
	Lifecycle    presence.Lifecycle   `json:"lifecycle"`
	Countdown    *presence.Countdown  `json:"countdown,omitempty"`
	ArrivedLabel string               `json:"arrived_label,omitempty"`
	Owner        *OwnerView           `json:"owner,omitempty"`
}

// ClusterView is a group of nearby pins rendered as one marker.
type ClusterView struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Count      int     `json:"count"`
	SizeBucket int     `json:"size_bucket"`
}

// ViewportResult is the map query outcome. When clustering applied, single
// pins stay in Pins and only multi-pin groups appear in Clusters.
type ViewportResult struct {
	Pins      []*MapPinView  `json:"pins"`
	Clusters  []*ClusterView `json:"clusters,omitempty"`
	Clustered bool           `json:"clustered"`
}

// IncomingInput carries the incoming-visitors query parameters.
type IncomingInput struct {
	Viewport    repository.Viewport
	HorizonDays int
}

// IncomingPinView is one scheduled visit disclosed to the viewer.
type IncomingPinView struct {
	ID          uuid.UUID            `json:"id"`
	OwnerID     uuid.UUID            `json:"owner_id"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Precision   visibility.Precision `json:"precision"`
	ArrivalTime time.Time            `json:"arrival_time"`
	Countdown   presence.Countdown   `json:"countdown"`
	Owner       *OwnerView           `json:"owner,omitempty"`
}

// IncomingResult buckets disclosed future pins by calendar day in UTC.
// ThisWeek holds arrivals after tomorrow up to the horizon.
type IncomingResult struct {
	Today    []*IncomingPinView `json:"today"`
	Tomorrow []*IncomingPinView `json:"tomorrow"`
	ThisWeek []*IncomingPinView `json:"this_week"`
}

// MapUsecase defines the interface for viewer-facing map queries
type MapUsecase interface {
	// QueryViewport retrieves the pins visible to the viewer inside a
	// viewport, optionally clustered for the request zoom
	QueryViewport(ctx context.Context, viewerID uuid.UUID, input *ViewportQueryInput) (*ViewportResult, error)

	// IncomingVisitors aggregates disclosed future pins arriving in the
	// viewport within the horizon
	IncomingVisitors(ctx context.Context, viewerID uuid.UUID, input *IncomingInput) (*IncomingResult, error)
}
