package store

import (
	"context"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"
	"pinmap/internal/infra/metrics"

	"github.com/google/uuid"
)

// instrumentedStore records call counts and latency per operation and outcome.
type instrumentedStore struct {
	next    service.PinStore
	backend string
	metrics *metrics.Metrics
}

// NewInstrumentedStore wraps next with prometheus metrics.
func NewInstrumentedStore(next service.PinStore, backend string, m *metrics.Metrics) service.PinStore {
	return &instrumentedStore{next: next, backend: backend, metrics: m}
}

func (s *instrumentedStore) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	start := time.Now()
	pins, err := s.next.List(ctx, ownerID)
	s.observe("list", start, err)

	return pins, err
}

func (s *instrumentedStore) Create(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	start := time.Now()
	stored, err := s.next.Create(ctx, pin)
	s.observe("create", start, err)

	return stored, err
}

func (s *instrumentedStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	start := time.Now()
	pin, err := s.next.Update(ctx, ownerID, id, patch)
	s.observe("update", start, err)

	return pin, err
}

func (s *instrumentedStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, ownerID, id)
	s.observe("delete", start, err)

	return err
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	s.metrics.ObserveStore(s.backend, op, outcome(err), time.Since(start))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domainerrors.ErrPinNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return metrics.OutcomeInvalid
	case errors.Is(err, domainerrors.ErrStoreUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
