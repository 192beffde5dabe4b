package usecase

import (
	"context"

	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyQuery optionally restricts a pin listing to a radius around Center.
type NearbyQuery struct {
	Center   *entity.Coordinate
	RadiusKm float64
}

// PinUsecase defines the stateless pin API served straight from the store.
type PinUsecase interface {
	// ListPins returns the owner's pins, newest first, optionally filtered by distance
	ListPins(ctx context.Context, ownerID uuid.UUID, query NearbyQuery) ([]*entity.Pin, error)

	// CreatePin validates the draft and persists a new pin
	CreatePin(ctx context.Context, ownerID uuid.UUID, draft entity.PinDraft) (*entity.Pin, error)

	// UpdatePin changes category or favorite flag
	UpdatePin(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error)

	// DeletePin removes a pin
	DeletePin(ctx context.Context, ownerID, id uuid.UUID) error
}
