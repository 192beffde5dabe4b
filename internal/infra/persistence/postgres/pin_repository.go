// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	"pinmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pinRepository implements the repository.PinRepository interface.
type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository is the constructor for pinRepository.
func NewPinRepository(db *gorm.DB) repository.PinRepository {
	return &pinRepository{
		db: db,
	}
}

// ListPinsByOwner retrieves the owner's pins, newest first.
func (repo *pinRepository) ListPinsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pins by owner")
	}

	pins := make([]*entity.Pin, 0, len(pinModels))
	for _, pinM := range pinModels {
		pins = append(pins, toPinDomain(pinM))
	}

	return pins, nil
}

// FindPinByID retrieves one of the owner's pins.
func (repo *pinRepository) FindPinByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Pin, error) {
	var pinM model.PinModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&pinM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin by ID")
	}

	return toPinDomain(&pinM), nil
}

// CreatePin persists a new pin.
func (repo *pinRepository) CreatePin(ctx context.Context, pin *entity.Pin) error {
	pinM := fromPinDomain(pin)

	if err := repo.db.WithContext(ctx).Create(pinM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePin
		}
		if isInputViolation(err) {
			return domainerrors.NewValidationError().Add("pin", "rejected by the database")
		}

		return errors.Wrap(err, "failed to create pin")
	}

	// Update the entity with the stored timestamps
	pin.CreatedAt = pinM.CreatedAt
	pin.UpdatedAt = pinM.UpdatedAt

	return nil
}

// UpdatePinMeta persists the mutable metadata of a pin.
func (repo *pinRepository) UpdatePinMeta(ctx context.Context, pin *entity.Pin) error {
	updatedAt := pin.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PinModel{}).
		Where("id = ? AND owner_id = ?", pin.ID, pin.OwnerID).
		Updates(map[string]any{
			"category":    pin.Category.String(),
			"color":       pin.Category.Info().Color,
			"is_favorite": pin.IsFavorite,
			"updated_at":  updatedAt,
		})

	if result.Error != nil {
		if isInputViolation(result.Error) {
			return domainerrors.NewValidationError().Add("category", "rejected by the database")
		}

		return errors.Wrap(result.Error, "failed to update pin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPinNotFound
	}
	pin.UpdatedAt = updatedAt

	return nil
}

// DeletePin removes one of the owner's pins.
func (repo *pinRepository) DeletePin(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.PinModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPinNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPinDomain converts a GORM PinModel to a domain Pin entity.
func toPinDomain(data *model.PinModel) *entity.Pin {
	if data == nil {
		return nil
	}

	category, ok := entity.ParseCategory(data.Category)
	if !ok {
		category = entity.CategoryOther
	}

	return &entity.Pin{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Coordinate:  entity.Coordinate{Latitude: data.Latitude, Longitude: data.Longitude},
		Category:    category,
		IsFavorite:  data.IsFavorite,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPinDomain converts a domain Pin entity to a GORM PinModel.
func fromPinDomain(data *entity.Pin) *model.PinModel {
	if data == nil {
		return nil
	}

	return &model.PinModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Latitude:    data.Coordinate.Latitude,
		Longitude:   data.Coordinate.Longitude,
		Category:    data.Category.String(),
		Color:       data.Category.Info().Color,
		IsFavorite:  data.IsFavorite,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
