package service

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileService supplies display summaries for pin owners. Summaries
// decorate map results and back the optional mode filter; they carry no
// authority over disclosure.
type ProfileService interface {
	// Summary returns the display profile for a single user.
	Summary(ctx context.Context, userID uuid.UUID) (*entity.ProfileSummary, error)

	// Summaries returns display profiles for a batch of users. Users the
	// profile service does not know are simply absent from the result.
	Summaries(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.ProfileSummary, error)
}
