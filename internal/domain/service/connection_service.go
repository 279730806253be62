// Package service defines interfaces for collaborators outside the pin
// engine: the social graph, the profile service, event publishing, and QR
// generation. The engine consumes these; it never implements their policy.
package service

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionService reports the social relationship between two users.
// The social graph itself (requests, accepts, blocks) is owned by an external
// system; the visibility engine only reads the resulting status.
type ConnectionService interface {
	// Status returns the relationship from viewer to owner.
	Status(ctx context.Context, viewerID, ownerID uuid.UUID) (entity.ConnectionStatus, error)

	// Statuses resolves the viewer's relationship to a batch of owners in one
	// call. Owners absent from the result are treated as ConnectionNone.
	Statuses(ctx context.Context, viewerID uuid.UUID, ownerIDs []uuid.UUID) (map[uuid.UUID]entity.ConnectionStatus, error)
}
