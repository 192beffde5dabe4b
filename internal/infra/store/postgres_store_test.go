package store

import (
	"context"
	"testing"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	"pinmap/internal/errors"
	mockRepo "pinmap/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newValidPin() *entity.Pin {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Pin{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Title:      "Kissa",
		Coordinate: entity.Coordinate{Latitude: 35.66, Longitude: 139.70},
		Category:   entity.CategoryRestaurant,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPostgresStore_Create(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate id", repoErr: errors.WithStack(repository.ErrDuplicatePin), wantErr: domainerrors.ErrValidationFailed},
		{name: "database down", repoErr: errors.New("connection reset"), wantErr: domainerrors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockPinRepository(t)
			pin := newValidPin()
			repo.EXPECT().CreatePin(mock.Anything, mock.AnythingOfType("*entity.Pin")).Return(tt.repoErr)

			stored, err := NewPostgresStore(repo).Create(context.Background(), pin)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, stored)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, pin.ID, stored.ID)
			assert.NotSame(t, pin, stored)
		})
	}
}

func TestPostgresStore_CreateRejectsInvalidPin(t *testing.T) {
	repo := mockRepo.NewMockPinRepository(t)
	pin := newValidPin()
	pin.Title = ""

	_, err := NewPostgresStore(repo).Create(context.Background(), pin)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	repo.AssertNotCalled(t, "CreatePin", mock.Anything, mock.Anything)
}

func TestPostgresStore_Update(t *testing.T) {
	ctx := context.Background()
	pin := newValidPin()
	category := entity.CategoryWork
	patch := entity.PinPatch{Category: &category}

	t.Run("applies patch", func(t *testing.T) {
		repo := mockRepo.NewMockPinRepository(t)
		found := *pin
		repo.EXPECT().FindPinByID(mock.Anything, pin.OwnerID, pin.ID).Return(&found, nil)
		repo.EXPECT().
			UpdatePinMeta(mock.Anything, mock.MatchedBy(func(p *entity.Pin) bool {
				return p.Category == entity.CategoryWork
			})).
			Return(nil)

		got, err := NewPostgresStore(repo).Update(ctx, pin.OwnerID, pin.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, entity.CategoryWork, got.Category)
		assert.Equal(t, pin.Title, got.Title)
	})

	t.Run("missing pin", func(t *testing.T) {
		repo := mockRepo.NewMockPinRepository(t)
		repo.EXPECT().FindPinByID(mock.Anything, pin.OwnerID, pin.ID).Return(nil, errors.WithStack(repository.ErrPinNotFound))

		_, err := NewPostgresStore(repo).Update(ctx, pin.OwnerID, pin.ID, patch)
		assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
	})

	t.Run("empty patch skips write", func(t *testing.T) {
		repo := mockRepo.NewMockPinRepository(t)
		found := *pin
		repo.EXPECT().FindPinByID(mock.Anything, pin.OwnerID, pin.ID).Return(&found, nil)

		got, err := NewPostgresStore(repo).Update(ctx, pin.OwnerID, pin.ID, entity.PinPatch{})
		require.NoError(t, err)
		assert.Equal(t, pin.UpdatedAt, got.UpdatedAt)
	})
}

func TestPostgresStore_Delete(t *testing.T) {
	repo := mockRepo.NewMockPinRepository(t)
	ownerID, id := uuid.New(), uuid.New()
	repo.EXPECT().DeletePin(mock.Anything, ownerID, id).Return(errors.WithStack(repository.ErrPinNotFound))

	err := NewPostgresStore(repo).Delete(context.Background(), ownerID, id)
	assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
}
