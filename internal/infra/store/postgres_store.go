// Package store implements the remote pin store client over PostgreSQL or
// Supabase, plus the circuit breaker and metrics decorators around it.
package store

import (
	"context"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/google/uuid"
)

// postgresStore adapts a PinRepository to the PinStore contract.
type postgresStore struct {
	repo repository.PinRepository
	now  func() time.Time
}

// NewPostgresStore creates a PinStore backed by the pins table.
func NewPostgresStore(repo repository.PinRepository) service.PinStore {
	return &postgresStore{repo: repo, now: time.Now}
}

func (s *postgresStore) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	pins, err := s.repo.ListPinsByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.mapError("list", err)
	}

	return pins, nil
}

func (s *postgresStore) Create(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	if pin == nil {
		return nil, domainerrors.NewValidationError().Add("pin", "pin is required")
	}
	if err := pin.Validate(); err != nil {
		return nil, err
	}

	stored := *pin
	if err := s.repo.CreatePin(ctx, &stored); err != nil {
		return nil, s.mapError("create", err)
	}

	return &stored, nil
}

func (s *postgresStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	pin, err := s.repo.FindPinByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.mapError("update", err)
	}
	if patch.IsEmpty() {
		return pin, nil
	}

	patch.Apply(pin, s.now())
	if err := s.repo.UpdatePinMeta(ctx, pin); err != nil {
		return nil, s.mapError("update", err)
	}

	return pin, nil
}

func (s *postgresStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.DeletePin(ctx, ownerID, id); err != nil {
		return s.mapError("delete", err)
	}

	return nil
}

// mapError translates repository errors into the store error taxonomy.
func (s *postgresStore) mapError(op string, err error) error {
	var verr *domainerrors.ValidationError
	switch {
	case errors.As(err, &verr):
		return err
	case errors.Is(err, repository.ErrPinNotFound):
		return errors.WithStack(domainerrors.ErrPinNotFound)
	case errors.Is(err, repository.ErrDuplicatePin):
		return domainerrors.NewValidationError().Add("id", "pin already exists")
	default:
		return domainerrors.NewStoreError(op, err)
	}
}
