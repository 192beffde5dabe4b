package store

import (
	"context"
	"log/slog"

	"pinmap/config"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"
	"pinmap/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// breakerStore fails fast with StoreUnavailable while the store keeps failing.
// Only infrastructure failures count against the breaker.
type breakerStore struct {
	next service.PinStore
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerStore wraps next in a circuit breaker configured by cfg.
func NewBreakerStore(next service.PinStore, name string, cfg config.BreakerConfig, logger *slog.Logger, m *metrics.Metrics) service.PinStore {
	if m != nil {
		m.BreakerState.WithLabelValues(name).Set(stateValue(gobreaker.StateClosed))
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Pin store circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if m != nil {
				m.BreakerState.WithLabelValues(name).Set(stateValue(to))
			}
		},
		IsSuccessful: isBreakerSuccess,
	})

	return &breakerStore{next: next, cb: cb}
}

func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	return !errors.Is(err, domainerrors.ErrStoreUnavailable)
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func (b *breakerStore) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pin, error) {
	return execute(b, "list", func() ([]*entity.Pin, error) {
		return b.next.List(ctx, ownerID)
	})
}

func (b *breakerStore) Create(ctx context.Context, pin *entity.Pin) (*entity.Pin, error) {
	return execute(b, "create", func() (*entity.Pin, error) {
		return b.next.Create(ctx, pin)
	})
}

func (b *breakerStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	return execute(b, "update", func() (*entity.Pin, error) {
		return b.next.Update(ctx, ownerID, id, patch)
	})
}

func (b *breakerStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	_, err := execute(b, "delete", func() (struct{}, error) {
		return struct{}{}, b.next.Delete(ctx, ownerID, id)
	})

	return err
}

func execute[T any](b *breakerStore, op string, call func() (T, error)) (T, error) {
	var zero T

	res, err := b.cb.Execute(func() (any, error) {
		return call()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, domainerrors.NewStoreError(op, err)
	}
	if err != nil {
		return zero, err
	}

	out, _ := res.(T)

	return out, nil
}
