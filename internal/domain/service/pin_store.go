// Package service declares the contracts for collaborators the domain relies on:
// the remote pin store, the map rendering surface and the identity provider.
package service

import (
	"context"

	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
)

// PinStore is the remote pin store client.
//
// Infrastructure failures are reported as errors matching
// domainerrors.ErrStoreUnavailable, bad input as *domainerrors.ValidationError
// and missing rows as domainerrors.ErrPinNotFound. Implementations never retry.
type PinStore interface {
	// List returns the owner's pins ordered by CreatedAt descending.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error)

	// Create persists pin and returns the stored row.
	Create(ctx context.Context, pin *entity.Pin) (*entity.Pin, error)

	// Update applies metadata changes and returns the stored row.
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error)

	// Delete removes the owner's pin.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
