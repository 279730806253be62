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
)

// pinRepository implements the domain.PinRepository interface.
type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository is the constructor for pinRepository.
func NewPinRepository(db *gorm.DB) repository.PinRepository {
	return &pinRepository{db: db}
}

// CreatePin persists a new pin.
func (repo *pinRepository) CreatePin(ctx context.Context, pin *entity.Pin) error {
	pinM := fromPinDomain(pin)

	if err := repo.db.WithContext(ctx).Create(pinM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Loser of a concurrent same-owner check-in race.
			return repository.ErrCurrentPinExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidCoordinates.WrapMessage("missing required pin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pin")
	}

	// Update the entity with generated values
	pin.ID = pinM.ID
	pin.CreatedAt = pinM.CreatedAt
	pin.UpdatedAt = pinM.UpdatedAt

	return nil
}

// FindPinByID retrieves a pin by its unique ID.
func (repo *pinRepository) FindPinByID(ctx context.Context, id uuid.UUID) (*entity.Pin, error) {
	var pinM model.PinModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pinM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin by ID")
	}

	return toPinDomain(&pinM), nil
}

// FindCurrentPinByOwner retrieves the owner's single current pin.
func (repo *pinRepository) FindCurrentPinByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Pin, error) {
	var pinM model.PinModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND pin_type = ?", ownerID, string(entity.PinTypeCurrent)).
		First(&pinM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find current pin by owner")
	}

	return toPinDomain(&pinM), nil
}

// FindPinsByOwner retrieves all pins for an owner, newest first.
func (repo *pinRepository) FindPinsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pinModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find pins by owner")
	}

	return toPinDomainSlice(pinModels), nil
}

// CountFuturePinsByOwner returns the number of future pins an owner holds.
func (repo *pinRepository) CountFuturePinsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PinModel{}).
		Where("owner_id = ? AND pin_type = ?", ownerID, string(entity.PinTypeFuture)).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count future pins by owner")
	}

	return count, nil
}

// FindPinsInViewport retrieves non-expired candidates inside the half-open
// bounding box [south, north) x [west, east). The SQL predicates below mirror
// geo.Contains, which is the single statement of that boundary rule.
func (repo *pinRepository) FindPinsInViewport(ctx context.Context, vp repository.Viewport, minAnchor time.Time) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel
	err := repo.db.WithContext(ctx).
		Where("latitude >= ? AND latitude < ?", vp.South, vp.North).
		Where("longitude >= ? AND longitude < ?", vp.West, vp.East).
		Where("COALESCE(arrival_time, created_at) > ?", minAnchor).
		Order("id ASC").
		Find(&pinModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find pins in viewport")
	}

	return toPinDomainSlice(pinModels), nil
}

// FindFuturePinsInViewport retrieves future pins arriving within [from, to].
func (repo *pinRepository) FindFuturePinsInViewport(ctx context.Context, vp repository.Viewport, from, to time.Time) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel
	err := repo.db.WithContext(ctx).
		Where("pin_type = ?", string(entity.PinTypeFuture)).
		Where("latitude >= ? AND latitude < ?", vp.South, vp.North).
		Where("longitude >= ? AND longitude < ?", vp.West, vp.East).
		Where("arrival_time BETWEEN ? AND ?", from, to).
		Order("arrival_time ASC, created_at ASC").
		Find(&pinModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find future pins in viewport")
	}

	return toPinDomainSlice(pinModels), nil
}

// UpdatePin updates an existing pin record.
func (repo *pinRepository) UpdatePin(ctx context.Context, pin *entity.Pin) error {
	pinM := fromPinDomain(pin)

	if err := repo.db.WithContext(ctx).Save(pinM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCurrentPinExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update pin")
	}

	pin.UpdatedAt = pinM.UpdatedAt

	return nil
}

// DeletePin removes a pin by its ID.
func (repo *pinRepository) DeletePin(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PinModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pin")
	}

	// If no rows were affected, it means the pin was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPinNotFound
	}

	return nil
}

// DeletePinsOlderThan hard-deletes pins whose decay anchor predates the cutoff.
func (repo *pinRepository) DeletePinsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("COALESCE(arrival_time, created_at) < ?", cutoff).
		Delete(&model.PinModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired pins")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toPinDomain converts a GORM PinModel to a domain Pin entity.
func toPinDomain(data *model.PinModel) *entity.Pin {
	if data == nil {
		return nil
	}

	return &entity.Pin{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		PinType:     entity.PinType(data.PinType),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ArrivalTime: data.ArrivalTime,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toPinDomainSlice(models []*model.PinModel) []*entity.Pin {
	pins := make([]*entity.Pin, 0, len(models))
	for _, pinM := range models {
		pins = append(pins, toPinDomain(pinM))
	}

	return pins
}

// fromPinDomain converts a domain Pin entity to a GORM PinModel.
func fromPinDomain(data *entity.Pin) *model.PinModel {
	if data == nil {
		return nil
	}

	return &model.PinModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		PinType:     string(data.PinType),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ArrivalTime: data.ArrivalTime,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
