// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// pinService implements the PinUsecase interface.
type pinService struct {
	store  service.PinStore
	logger *slog.Logger
	now    func() time.Time
}

// NewPinService is the constructor for pinService.
func NewPinService(store service.PinStore, logger *slog.Logger) usecase.PinUsecase {
	return &pinService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pinService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPins returns the owner's pins, keeping only those within the query radius when one is given.
func (srv *pinService) ListPins(ctx context.Context, ownerID uuid.UUID, query usecase.NearbyQuery) ([]*entity.Pin, error) {
	if err := validateNearby(query); err != nil {
		return nil, err
	}

	pins, err := srv.store.List(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list pins", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return nil, errors.Wrap(err, "failed to list pins")
	}

	if query.Center == nil {
		return pins, nil
	}

	center := query.Center.Point()
	maxMeters := query.RadiusKm * 1000
	nearby := make([]*entity.Pin, 0, len(pins))
	for _, pin := range pins {
		if geo.DistanceHaversine(center, pin.Coordinate.Point()) <= maxMeters {
			nearby = append(nearby, pin)
		}
	}
	srv.log(ctx).Debug("Filtered pins by distance",
		slog.Int("total", len(pins)),
		slog.Int("nearby", len(nearby)),
		slog.Float64("radius_km", query.RadiusKm),
	)

	return nearby, nil
}

// CreatePin validates the draft and stores a new pin with a fresh ID.
func (srv *pinService) CreatePin(ctx context.Context, ownerID uuid.UUID, draft entity.PinDraft) (*entity.Pin, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	pin := entity.NewPin(ownerID, draft, srv.now())
	stored, err := srv.store.Create(ctx, pin)
	if err != nil {
		srv.log(ctx).Error("Failed to create pin", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return nil, errors.Wrap(err, "failed to create pin")
	}
	srv.log(ctx).Info("Pin created", slog.Any("pin_id", stored.ID), slog.Any("owner_id", ownerID))

	return stored, nil
}

// UpdatePin applies a metadata patch.
func (srv *pinService) UpdatePin(ctx context.Context, ownerID, id uuid.UUID, patch entity.PinPatch) (*entity.Pin, error) {
	pin, err := srv.store.Update(ctx, ownerID, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update pin")
	}

	return pin, nil
}

// DeletePin removes a pin.
func (srv *pinService) DeletePin(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.store.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete pin")
	}
	srv.log(ctx).Info("Pin deleted", slog.Any("pin_id", id), slog.Any("owner_id", ownerID))

	return nil
}

func validateNearby(query usecase.NearbyQuery) error {
	if query.Center == nil {
		return nil
	}

	verr := domainerrors.NewValidationError()
	if !entity.ValidLatitude(query.Center.Latitude) {
		verr.Add("lat", "latitude must be between -90 and 90")
	}
	if !entity.ValidLongitude(query.Center.Longitude) {
		verr.Add("lng", "longitude must be between -180 and 180")
	}
	if query.RadiusKm <= 0 {
		verr.Add("radius_km", "radius must be positive")
	}

	return verr.OrNil()
}
