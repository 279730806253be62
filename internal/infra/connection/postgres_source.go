// Package connection provides read-only access to the social graph. The
// graph itself is owned by an external service; depending on deployment the
// engine either reads its connections table directly or calls its HTTP API.
package connection

import (
	"context"

	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"
	"pindrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postgresSource reads connection statuses straight from the connections
// table. Suitable when the social service shares the same database.
type postgresSource struct {
	db *gorm.DB
}

// NewPostgresSource creates a ConnectionService backed by the shared database.
func NewPostgresSource(db *gorm.DB) service.ConnectionService {
	return &postgresSource{db: db}
}

// Status returns the relationship from viewer to owner. Connections are
// stored once per pair, in either direction.
func (s *postgresSource) Status(ctx context.Context, viewerID, ownerID uuid.UUID) (entity.ConnectionStatus, error) {
	if viewerID == ownerID {
		return entity.ConnectionConnected, nil
	}

	var connM model.ConnectionModel
	err := s.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			viewerID, ownerID, ownerID, viewerID).
		First(&connM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ConnectionNone, nil
		}

		return entity.ConnectionNone, errors.Wrap(err, "failed to query connection status")
	}

	return toConnectionStatus(connM.Status), nil
}

// Statuses resolves the viewer's relationship to a batch of owners in one
// query. Owners with no connection row are filled with ConnectionNone.
func (s *postgresSource) Statuses(ctx context.Context, viewerID uuid.UUID, ownerIDs []uuid.UUID) (map[uuid.UUID]entity.ConnectionStatus, error) {
	statuses := make(map[uuid.UUID]entity.ConnectionStatus, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return statuses, nil
	}

	var connModels []*model.ConnectionModel
	err := s.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id IN ?) OR (addressee_id = ? AND requester_id IN ?)",
			viewerID, ownerIDs, viewerID, ownerIDs).
		Find(&connModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to query connection statuses")
	}

	for _, connM := range connModels {
		other := connM.RequesterID
		if other == viewerID {
			other = connM.AddresseeID
		}
		statuses[other] = toConnectionStatus(connM.Status)
	}

	for _, ownerID := range ownerIDs {
		if ownerID == viewerID {
			statuses[ownerID] = entity.ConnectionConnected

			continue
		}
		if _, ok := statuses[ownerID]; !ok {
			statuses[ownerID] = entity.ConnectionNone
		}
	}

	return statuses, nil
}

func toConnectionStatus(raw string) entity.ConnectionStatus {
	switch entity.ConnectionStatus(raw) {
	case entity.ConnectionConnected:
		return entity.ConnectionConnected
	case entity.ConnectionPending:
		return entity.ConnectionPending
	default:
		// Blocked or any retired status discloses nothing.
		return entity.ConnectionNone
	}
}
