package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pinmap/config"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/errors"
	"pinmap/internal/infra/mapsurface"
	"pinmap/internal/infra/metrics"
	"pinmap/internal/mapstate"
	mockService "pinmap/internal/mocks/service"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mapSessionFixtures holds all test dependencies for map session tests.
type mapSessionFixtures struct {
	service  usecase.MapSessionUsecase
	store    *mockService.MockPinStore
	exporter *mockService.MockSnapshotExporter
	ownerID  uuid.UUID
}

func createTestMapSessionService(t *testing.T) mapSessionFixtures {
	store := mockService.NewMockPinStore(t)
	exporter := mockService.NewMockSnapshotExporter(t)

	cfg := &config.Config{
		Store: &config.StoreConfig{Timeout: time.Second},
		Map:   &config.MapConfig{Latitude: 35.6895, Longitude: 139.6917, Zoom: 12},
	}

	svc := NewMapSessionService(MapSessionParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:    store,
		Surfaces: mapsurface.NewFactory(),
		Exporter: exporter,
		Metrics:  metrics.New(),
	})

	return mapSessionFixtures{
		service:  svc,
		store:    store,
		exporter: exporter,
		ownerID:  uuid.New(),
	}
}

func storedPin(ownerID uuid.UUID, title string, createdAt time.Time) *entity.Pin {
	return &entity.Pin{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		Coordinate: entity.Coordinate{Latitude: 35.68, Longitude: 139.76},
		Category:   entity.CategoryOther,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func strPtr(s string) *string {
	return &s
}

// startWith starts a session whose initial load returns pins.
func (fx mapSessionFixtures) startWith(t *testing.T, pins ...*entity.Pin) *usecase.SessionView {
	t.Helper()
	fx.store.EXPECT().List(mock.Anything, fx.ownerID).Return(pins, nil).Once()

	view, err := fx.service.Start(context.Background(), fx.ownerID)
	require.NoError(t, err)

	return view
}

// openDraft clicks and titles a draft.
func (fx mapSessionFixtures) openDraft(t *testing.T, title string) {
	t.Helper()
	ctx := context.Background()
	_, err := fx.service.Click(ctx, fx.ownerID, entity.Coordinate{Latitude: 35.7, Longitude: 139.7})
	require.NoError(t, err)
	_, err = fx.service.EditDraft(ctx, fx.ownerID, mapstate.DraftFields{Title: strPtr(title)})
	require.NoError(t, err)
}

func TestMapSession_StartLoadsPinsAndMarkers(t *testing.T) {
	fx := createTestMapSessionService(t)
	now := time.Now()
	a := storedPin(fx.ownerID, "a", now)
	b := storedPin(fx.ownerID, "b", now.Add(-time.Hour))
	b.Coordinate = a.Coordinate

	view := fx.startWith(t, a, b)

	assert.Len(t, view.Pins, 2)
	assert.Equal(t, 2, view.MarkerCount, "pins sharing a coordinate get a marker each")
	assert.Equal(t, 2, view.Counts[entity.CategoryOther])
	assert.Empty(t, view.LoadError)
	assert.Equal(t, "idle", view.Draft.StateName)
	for _, pv := range view.Pins {
		assert.Equal(t, "confirmed", pv.Status)
		assert.True(t, pv.HasMarker)
	}

	fc, err := fx.service.Markers(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 2)
}

func TestMapSession_StartStoreUnavailableStartsEmpty(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.store.EXPECT().
		List(mock.Anything, fx.ownerID).
		Return(nil, domainerrors.NewStoreError("list", errors.New("connection refused")))

	view, err := fx.service.Start(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Empty(t, view.Pins)
	assert.Equal(t, domainerrors.ErrStoreUnavailable.Message(), view.LoadError)
}

func TestMapSession_StartTwiceReusesSession(t *testing.T) {
	fx := createTestMapSessionService(t)
	first := storedPin(fx.ownerID, "first", time.Now())
	fx.startWith(t, first)
	fx.openDraft(t, "keep me")

	second := storedPin(fx.ownerID, "second", time.Now())
	view := fx.startWith(t, first, second)

	assert.Len(t, view.Pins, 2)
	assert.Equal(t, 2, view.MarkerCount)
	require.NotNil(t, view.Draft.Draft)
	assert.Equal(t, "keep me", view.Draft.Draft.Title, "reload does not touch the draft")
}

func TestMapSession_SubmitDraft(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.startWith(t)
	fx.openDraft(t, "  Ramen Street  ")

	fx.store.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
		RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
			stored := *pin
			stored.CreatedAt = pin.CreatedAt.Add(time.Millisecond)

			return &stored, nil
		})

	pin, err := fx.service.SubmitDraft(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Ramen Street", pin.Title)
	assert.Equal(t, fx.ownerID, pin.OwnerID)

	pins, err := fx.service.Pins(context.Background(), fx.ownerID, usecase.PinOrderInsertion)
	require.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, "confirmed", pins[0].Status)
	assert.True(t, pins[0].HasMarker)

	draft, err := fx.service.Draft(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Equal(t, mapstate.FlowIdle, draft.State)
}

func TestMapSession_SubmitDraftIsOptimisticAndGuarded(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.startWith(t)
	fx.openDraft(t, "Shrine")
	ctx := context.Background()

	fx.store.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
		RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
			pins, err := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
			require.NoError(t, err)
			require.Len(t, pins, 1)
			assert.Equal(t, "pending", pins[0].Status)
			assert.True(t, pins[0].HasMarker)

			_, err = fx.service.Click(ctx, fx.ownerID, entity.Coordinate{Latitude: 1, Longitude: 1})
			assert.True(t, errors.Is(err, domainerrors.ErrSubmissionInFlight))

			_, err = fx.service.SubmitDraft(ctx, fx.ownerID)
			assert.True(t, errors.Is(err, domainerrors.ErrSubmissionInFlight))

			_, err = fx.service.DeletePin(ctx, fx.ownerID, pin.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrPinPending))

			return pin, nil
		}).Once()

	_, err := fx.service.SubmitDraft(ctx, fx.ownerID)
	require.NoError(t, err)
}

func TestMapSession_SubmitDraftFailureRetractsPin(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.startWith(t)
	fx.openDraft(t, "Market")
	ctx := context.Background()

	fx.store.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
		Return(nil, domainerrors.NewStoreError("create", errors.New("timeout")))

	_, err := fx.service.SubmitDraft(ctx, fx.ownerID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	pins, err := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
	require.NoError(t, err)
	assert.Empty(t, pins, "no phantom pin after a failed create")

	fc, err := fx.service.Markers(ctx, fx.ownerID)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)

	draft, err := fx.service.Draft(ctx, fx.ownerID)
	require.NoError(t, err)
	assert.Equal(t, mapstate.FlowDraftOpen, draft.State)
	assert.Equal(t, "Market", draft.Draft.Title)
	assert.NotEmpty(t, draft.LastError)
}

func TestMapSession_SubmitDraftValidation(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.startWith(t)
	fx.openDraft(t, "   ")

	_, err := fx.service.SubmitDraft(context.Background(), fx.ownerID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	draft, err := fx.service.Draft(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Contains(t, draft.FieldErrors, "title")
}

func TestMapSession_EndDiscardsInFlightCreate(t *testing.T) {
	fx := createTestMapSessionService(t)
	fx.startWith(t)
	fx.openDraft(t, "Late")
	ctx := context.Background()

	fx.store.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
		RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
			require.NoError(t, fx.service.End(ctx, fx.ownerID))

			return pin, nil
		})

	_, err := fx.service.SubmitDraft(ctx, fx.ownerID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionClosed))

	_, err = fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestMapSession_ReloadKeepsChangesMadeDuringLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("create confirmed while list runs", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		fx.startWith(t)
		fx.openDraft(t, "Bakery")

		var created *entity.Pin
		fx.store.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
			RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
				return pin, nil
			}).Once()
		fx.store.EXPECT().
			List(mock.Anything, fx.ownerID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Pin, error) {
				var err error
				created, err = fx.service.SubmitDraft(ctx, fx.ownerID)
				require.NoError(t, err)

				return nil, nil
			}).Once()

		view, err := fx.service.Start(ctx, fx.ownerID)
		require.NoError(t, err)
		require.Len(t, view.Pins, 1)
		assert.Equal(t, created.ID, view.Pins[0].ID)
		assert.Equal(t, "confirmed", view.Pins[0].Status)
		assert.Equal(t, 1, view.MarkerCount)

		// The next load is newer than the create, so its result is authoritative.
		view = fx.startWith(t)
		assert.Empty(t, view.Pins)
		assert.Zero(t, view.MarkerCount)
	})

	t.Run("delete confirmed while list runs", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		keep := storedPin(fx.ownerID, "keep", time.Now())
		drop := storedPin(fx.ownerID, "drop", time.Now())
		fx.startWith(t, keep, drop)

		fx.store.EXPECT().Delete(mock.Anything, fx.ownerID, drop.ID).Return(nil).Once()
		fx.store.EXPECT().
			List(mock.Anything, fx.ownerID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Pin, error) {
				outcome, err := fx.service.DeletePin(ctx, fx.ownerID, drop.ID)
				require.NoError(t, err)
				require.Equal(t, usecase.DeleteRemoved, outcome)

				return []*entity.Pin{keep, drop}, nil
			}).Once()

		view, err := fx.service.Start(ctx, fx.ownerID)
		require.NoError(t, err)
		require.Len(t, view.Pins, 1)
		assert.Equal(t, keep.ID, view.Pins[0].ID)
		assert.Equal(t, 1, view.MarkerCount)
	})

	t.Run("update confirmed while list runs", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		pin := storedPin(fx.ownerID, "bar", time.Now())
		fx.startWith(t, pin)

		favorite := true
		patch := entity.PinPatch{IsFavorite: &favorite}
		updated := *pin
		updated.IsFavorite = true
		fx.store.EXPECT().Update(mock.Anything, fx.ownerID, pin.ID, patch).Return(&updated, nil).Once()
		fx.store.EXPECT().
			List(mock.Anything, fx.ownerID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Pin, error) {
				_, err := fx.service.UpdatePin(ctx, fx.ownerID, pin.ID, patch)
				require.NoError(t, err)

				return []*entity.Pin{pin}, nil
			}).Once()

		view, err := fx.service.Start(ctx, fx.ownerID)
		require.NoError(t, err)
		require.Len(t, view.Pins, 1)
		assert.True(t, view.Pins[0].IsFavorite)
	})

	t.Run("store outage during load keeps confirmed create", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		fx.startWith(t)
		fx.openDraft(t, "Library")

		fx.store.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Pin")).
			RunAndReturn(func(_ context.Context, pin *entity.Pin) (*entity.Pin, error) {
				return pin, nil
			}).Once()
		fx.store.EXPECT().
			List(mock.Anything, fx.ownerID).
			RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Pin, error) {
				_, err := fx.service.SubmitDraft(ctx, fx.ownerID)
				require.NoError(t, err)

				return nil, domainerrors.NewStoreError("list", errors.New("connection reset"))
			}).Once()

		view, err := fx.service.Start(ctx, fx.ownerID)
		require.NoError(t, err)
		assert.NotEmpty(t, view.LoadError)
		require.Len(t, view.Pins, 1)
		assert.Equal(t, "Library", view.Pins[0].Title)
	})
}

func TestMapSession_DeletePin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is a no-op", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		fx.startWith(t)

		outcome, err := fx.service.DeletePin(ctx, fx.ownerID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, usecase.DeleteNotFound, outcome)
	})

	t.Run("removes pin and marker", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		keep := storedPin(fx.ownerID, "keep", time.Now())
		drop := storedPin(fx.ownerID, "drop", time.Now())
		fx.startWith(t, keep, drop)
		fx.store.EXPECT().Delete(mock.Anything, fx.ownerID, drop.ID).Return(nil)

		outcome, err := fx.service.DeletePin(ctx, fx.ownerID, drop.ID)
		require.NoError(t, err)
		assert.Equal(t, usecase.DeleteRemoved, outcome)

		pins, err := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
		require.NoError(t, err)
		require.Len(t, pins, 1)
		assert.Equal(t, keep.ID, pins[0].ID)

		fc, err := fx.service.Markers(ctx, fx.ownerID)
		require.NoError(t, err)
		require.Len(t, fc.Features, 1)
		assert.Equal(t, keep.ID.String(), fc.Features[0].ID)
	})

	t.Run("store not found still removes locally", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		gone := storedPin(fx.ownerID, "gone", time.Now())
		fx.startWith(t, gone)
		fx.store.EXPECT().Delete(mock.Anything, fx.ownerID, gone.ID).Return(errors.WithStack(domainerrors.ErrPinNotFound))

		outcome, err := fx.service.DeletePin(ctx, fx.ownerID, gone.ID)
		require.NoError(t, err)
		assert.Equal(t, usecase.DeleteNotFound, outcome)

		pins, _ := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
		assert.Empty(t, pins)
	})

	t.Run("store unavailable leaves state", func(t *testing.T) {
		fx := createTestMapSessionService(t)
		pin := storedPin(fx.ownerID, "stay", time.Now())
		fx.startWith(t, pin)
		fx.store.EXPECT().Delete(mock.Anything, fx.ownerID, pin.ID).Return(domainerrors.NewStoreError("delete", nil))

		_, err := fx.service.DeletePin(ctx, fx.ownerID, pin.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

		pins, _ := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
		require.Len(t, pins, 1)
		assert.True(t, pins[0].HasMarker)
	})
}

func TestMapSession_UpdatePinKeepsMarker(t *testing.T) {
	fx := createTestMapSessionService(t)
	ctx := context.Background()
	pin := storedPin(fx.ownerID, "cafe", time.Now())
	fx.startWith(t, pin)

	before, err := fx.service.Markers(ctx, fx.ownerID)
	require.NoError(t, err)

	category := entity.CategoryRestaurant
	favorite := true
	patch := entity.PinPatch{Category: &category, IsFavorite: &favorite}
	updated := *pin
	updated.Category = category
	updated.IsFavorite = true
	fx.store.EXPECT().Update(mock.Anything, fx.ownerID, pin.ID, patch).Return(&updated, nil)

	got, err := fx.service.UpdatePin(ctx, fx.ownerID, pin.ID, patch)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	pins, _ := fx.service.Pins(ctx, fx.ownerID, usecase.PinOrderInsertion)
	require.Len(t, pins, 1)
	assert.Equal(t, entity.CategoryRestaurant, pins[0].Category)

	after, err := fx.service.Markers(ctx, fx.ownerID)
	require.NoError(t, err)
	assert.Equal(t, before, after, "metadata updates do not rebuild markers")

	_, err = fx.service.UpdatePin(ctx, fx.ownerID, uuid.New(), patch)
	assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
}

func TestMapSession_PinsRecentOrder(t *testing.T) {
	fx := createTestMapSessionService(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	older := storedPin(fx.ownerID, "older", base)
	newer := storedPin(fx.ownerID, "newer", base.Add(time.Hour))
	fx.startWith(t, older, newer)

	pins, err := fx.service.Pins(context.Background(), fx.ownerID, usecase.PinOrderRecent)
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, "newer", pins[0].Title)
}

func TestMapSession_Export(t *testing.T) {
	fx := createTestMapSessionService(t)
	pin := storedPin(fx.ownerID, "exported", time.Now())
	fx.startWith(t, pin)

	fx.exporter.EXPECT().
		Export(mock.Anything, fx.ownerID, []entity.Pin{*pin}).
		Return("snapshots/key.geojson", nil)

	result, err := fx.service.Export(context.Background(), fx.ownerID)
	require.NoError(t, err)
	assert.Equal(t, "snapshots/key.geojson", result.Key)
	assert.Equal(t, 1, result.PinCount)
}

func TestMapSession_RequiresSession(t *testing.T) {
	fx := createTestMapSessionService(t)
	ctx := context.Background()

	_, err := fx.service.Click(ctx, fx.ownerID, entity.Coordinate{})
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
	_, err = fx.service.SubmitDraft(ctx, fx.ownerID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
	assert.True(t, errors.Is(fx.service.End(ctx, fx.ownerID), domainerrors.ErrSessionNotFound))
}
