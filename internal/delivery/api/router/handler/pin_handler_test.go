package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	mockUsecase "pinmap/internal/mocks/usecase"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPinHandlerEcho(t *testing.T, userID uuid.UUID) (*mockUsecase.MockPinUsecase, func(method, path, body string) (int, envelope)) {
	pinUC := mockUsecase.NewMockPinUsecase(t)
	h := NewPinHandler(PinHandlerParams{PinUC: pinUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	e, g := newTestEcho(userID)
	g.GET("/pins", h.ListPins)
	g.POST("/pins", h.CreatePin)
	g.PATCH("/pins/:id", h.UpdatePin)
	g.DELETE("/pins/:id", h.DeletePin)

	return pinUC, func(method, path, body string) (int, envelope) {
		rec, env := doRequest(t, e, method, path, body)

		return rec.Code, env
	}
}

func TestPinHandler_ListPins(t *testing.T) {
	userID := uuid.New()

	t.Run("nearby query", func(t *testing.T) {
		pinUC, do := newPinHandlerEcho(t, userID)
		pinUC.EXPECT().
			ListPins(mock.Anything, userID, mock.MatchedBy(func(q usecase.NearbyQuery) bool {
				return q.Center != nil && q.Center.Latitude == 35.5 && q.Center.Longitude == 139.5 && q.RadiusKm == 2
			})).
			Return([]*entity.Pin{}, nil)

		code, _ := do(http.MethodGet, "/api/v1/pins?lat=35.5&lng=139.5&radius_km=2", "")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("malformed number", func(t *testing.T) {
		_, do := newPinHandlerEcho(t, userID)

		code, env := do(http.MethodGet, "/api/v1/pins?lat=north&lng=139.5&radius_km=2", "")
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		pinUC, do := newPinHandlerEcho(t, userID)
		pinUC.EXPECT().ListPins(mock.Anything, userID, usecase.NearbyQuery{}).Return(nil, domainerrors.NewStoreError("list", nil))

		code, env := do(http.MethodGet, "/api/v1/pins", "")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	})
}

func TestPinHandler_CreatePin(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockPinUsecase)
		wantStatus int
		wantField  string
	}{
		{
			name: "created",
			body: `{"title":"Tower","latitude":35.65,"longitude":139.74,"category":"sightseeing"}`,
			setup: func(uc *mockUsecase.MockPinUsecase) {
				uc.EXPECT().
					CreatePin(mock.Anything, userID, mock.MatchedBy(func(d entity.PinDraft) bool {
						return d.Title == "Tower" && d.Category == entity.CategorySightseeing
					})).
					Return(&entity.Pin{ID: uuid.New(), OwnerID: userID, Title: "Tower"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"latitude":35.65,"longitude":139.74}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "title",
		},
		{
			name:       "latitude out of range",
			body:       `{"title":"x","latitude":95,"longitude":139.74}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "latitude",
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
			wantField:  "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pinUC, do := newPinHandlerEcho(t, userID)
			if tt.setup != nil {
				tt.setup(pinUC)
			}

			code, env := do(http.MethodPost, "/api/v1/pins", tt.body)
			assert.Equal(t, tt.wantStatus, code)
			if tt.wantField != "" {
				require.NotNil(t, env.Error)
				assert.Contains(t, env.Error.Details, tt.wantField)
			}
		})
	}
}

func TestPinHandler_UpdateAndDelete(t *testing.T) {
	userID, pinID := uuid.New(), uuid.New()

	t.Run("update", func(t *testing.T) {
		pinUC, do := newPinHandlerEcho(t, userID)
		favorite := true
		pinUC.EXPECT().
			UpdatePin(mock.Anything, userID, pinID, entity.PinPatch{IsFavorite: &favorite}).
			Return(&entity.Pin{ID: pinID, IsFavorite: true}, nil)

		code, _ := do(http.MethodPatch, "/api/v1/pins/"+pinID.String(), `{"is_favorite":true}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("bad id", func(t *testing.T) {
		_, do := newPinHandlerEcho(t, userID)

		code, env := do(http.MethodDelete, "/api/v1/pins/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "id")
	})

	t.Run("delete missing", func(t *testing.T) {
		pinUC, do := newPinHandlerEcho(t, userID)
		pinUC.EXPECT().DeletePin(mock.Anything, userID, pinID).Return(domainerrors.ErrPinNotFound)

		code, env := do(http.MethodDelete, "/api/v1/pins/"+pinID.String(), "")
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PIN_NOT_FOUND", env.Error.Code)
	})
}
