package postgres

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visibilityRepository implements the domain.VisibilityRepository interface.
type visibilityRepository struct {
	db *gorm.DB
}

// NewVisibilityRepository is the constructor for visibilityRepository.
func NewVisibilityRepository(db *gorm.DB) repository.VisibilityRepository {
	return &visibilityRepository{db: db}
}

// GetLevel retrieves the user's visibility level, falling back to the default
// when the user has never stored a setting.
func (repo *visibilityRepository) GetLevel(ctx context.Context, userID uuid.UUID) (entity.VisibilityLevel, error) {
	var settingM model.VisibilitySettingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultVisibilityLevel, nil
		}

		return "", errors.Wrap(err, "failed to get visibility level")
	}

	level := entity.VisibilityLevel(settingM.Level)
	if !level.Valid() {
		// A row written before a level was retired; treat as unset.
		return entity.DefaultVisibilityLevel, nil
	}

	return level, nil
}

// GetLevels retrieves visibility levels for a batch of users in one query.
// Users without a stored setting are filled with the default level.
func (repo *visibilityRepository) GetLevels(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.VisibilityLevel, error) {
	levels := make(map[uuid.UUID]entity.VisibilityLevel, len(userIDs))
	if len(userIDs) == 0 {
		return levels, nil
	}

	var settingModels []*model.VisibilitySettingModel
	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&settingModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to get visibility levels")
	}

	for _, settingM := range settingModels {
		level := entity.VisibilityLevel(settingM.Level)
		if level.Valid() {
			levels[settingM.UserID] = level
		}
	}

	for _, userID := range userIDs {
		if _, ok := levels[userID]; !ok {
			levels[userID] = entity.DefaultVisibilityLevel
		}
	}

	return levels, nil
}

// SetLevel upserts the user's visibility level.
func (repo *visibilityRepository) SetLevel(ctx context.Context, userID uuid.UUID, level entity.VisibilityLevel) error {
	settingM := &model.VisibilitySettingModel{
		UserID:    userID,
		Level:     string(level),
		UpdatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
		}).
		Create(settingM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set visibility level")
	}

	return nil
}
