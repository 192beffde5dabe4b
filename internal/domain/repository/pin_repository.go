// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pinmap/internal/domain/entity"
	"pinmap/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPinNotFound is returned when a pin row does not exist for the owner.
	ErrPinNotFound = errors.New("pin not found")
	// ErrDuplicatePin is returned when a pin with the same id already exists.
	ErrDuplicatePin = errors.New("pin already exists")
)

// PinRepository defines the database operations on the pins table.
// Every operation is scoped to an owner for multi-tenant isolation.
type PinRepository interface {
	// ListPinsByOwner returns the owner's pins ordered by created_at descending.
	ListPinsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error)

	// FindPinByID retrieves one of the owner's pins. Returns ErrPinNotFound when absent.
	FindPinByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Pin, error)

	// CreatePin inserts the pin and refreshes its timestamps from the row.
	CreatePin(ctx context.Context, pin *entity.Pin) error

	// UpdatePinMeta persists category and favorite flags.
	UpdatePinMeta(ctx context.Context, pin *entity.Pin) error

	// DeletePin removes the owner's pin. Returns ErrPinNotFound when nothing was deleted.
	DeletePin(ctx context.Context, ownerID, id uuid.UUID) error
}
