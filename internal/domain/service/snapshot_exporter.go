package service

import (
	"context"

	"pinmap/internal/domain/entity"

	"github.com/google/uuid"
)

// SnapshotExporter writes a point-in-time copy of an owner's pins somewhere durable.
type SnapshotExporter interface {
	// Export stores pins and returns the object key it wrote.
	Export(ctx context.Context, ownerID uuid.UUID, pins []entity.Pin) (string, error)
}
