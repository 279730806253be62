// Package profile provides read-only access to user display profiles. The
// profile service owns the table; this engine only decorates map results
// with it.
package profile

import (
	"context"

	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"
	"pindrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// postgresSource reads profile summaries from the shared database.
type postgresSource struct {
	db *gorm.DB
}

// NewProfileService creates a ProfileService backed by the shared database.
func NewProfileService(db *gorm.DB) service.ProfileService {
	return &postgresSource{db: db}
}

// Summary returns the display profile for a single user, or nil when the
// profile service does not know the user.
func (s *postgresSource) Summary(ctx context.Context, userID uuid.UUID) (*entity.ProfileSummary, error) {
	var profileM model.ProfileModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to query profile")
	}

	return toProfileDomain(&profileM), nil
}

// Summaries returns display profiles for a batch of users in one query.
// Unknown users are simply absent from the result.
func (s *postgresSource) Summaries(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.ProfileSummary, error) {
	summaries := make(map[uuid.UUID]*entity.ProfileSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}

	var profileModels []*model.ProfileModel
	err := s.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to query profiles")
	}

	for _, profileM := range profileModels {
		summaries[profileM.UserID] = toProfileDomain(profileM)
	}

	return summaries, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.ProfileSummary {
	if data == nil {
		return nil
	}

	return &entity.ProfileSummary{
		UserID:    data.UserID,
		Name:      data.Name,
		AvatarURL: data.AvatarURL,
		Interests: data.Interests,
		Mode:      data.Mode,
	}
}

// Module provides the profile source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileService),
)
