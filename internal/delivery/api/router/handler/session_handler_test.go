package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/mapstate"
	mockUsecase "pinmap/internal/mocks/usecase"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionHandlerEcho(t *testing.T, userID uuid.UUID) (*mockUsecase.MockMapSessionUsecase, func(method, path, body string) (int, envelope, string)) {
	sessionUC := mockUsecase.NewMockMapSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	e, g := newTestEcho(userID)
	sg := g.Group("/session")
	sg.POST("", h.Start)
	sg.DELETE("", h.End)
	sg.GET("/pins", h.Pins)
	sg.DELETE("/pins/:id", h.DeletePin)
	sg.POST("/clicks", h.Click)
	sg.PATCH("/draft", h.EditDraft)
	sg.POST("/draft/submit", h.SubmitDraft)
	sg.GET("/markers", h.Markers)

	return sessionUC, func(method, path, body string) (int, envelope, string) {
		rec, env := doRequest(t, e, method, path, body)

		return rec.Code, env, rec.Body.String()
	}
}

func TestSessionHandler_Start(t *testing.T) {
	userID := uuid.New()
	sessionUC, do := newSessionHandlerEcho(t, userID)
	sessionUC.EXPECT().Start(mock.Anything, userID).Return(&usecase.SessionView{
		OwnerID:   userID,
		LoadError: domainerrors.ErrStoreUnavailable.Message(),
	}, nil)

	code, env, _ := do(http.MethodPost, "/api/v1/session", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"load_error"`)
}

func TestSessionHandler_End(t *testing.T) {
	userID := uuid.New()
	sessionUC, do := newSessionHandlerEcho(t, userID)
	sessionUC.EXPECT().End(mock.Anything, userID).Return(domainerrors.ErrSessionNotFound)

	code, env, _ := do(http.MethodDelete, "/api/v1/session", "")
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
}

func TestSessionHandler_Pins(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantOrder  usecase.PinOrder
		wantStatus int
	}{
		{name: "default order", query: "", wantOrder: usecase.PinOrderInsertion, wantStatus: http.StatusOK},
		{name: "recent", query: "?order=recent", wantOrder: usecase.PinOrderRecent, wantStatus: http.StatusOK},
		{name: "unknown order", query: "?order=alphabetical", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC, do := newSessionHandlerEcho(t, userID)
			if tt.wantOrder != "" {
				sessionUC.EXPECT().Pins(mock.Anything, userID, tt.wantOrder).Return([]usecase.PinView{}, nil)
			}

			code, _, _ := do(http.MethodGet, "/api/v1/session/pins"+tt.query, "")
			assert.Equal(t, tt.wantStatus, code)
		})
	}
}

func TestSessionHandler_DeletePinNotFoundIsOK(t *testing.T) {
	userID, pinID := uuid.New(), uuid.New()
	sessionUC, do := newSessionHandlerEcho(t, userID)
	sessionUC.EXPECT().DeletePin(mock.Anything, userID, pinID).Return(usecase.DeleteNotFound, nil)

	code, env, _ := do(http.MethodDelete, "/api/v1/session/pins/"+pinID.String(), "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"outcome":"not_found"}`, string(env.Data))
}

func TestSessionHandler_DraftFlow(t *testing.T) {
	userID := uuid.New()
	sessionUC, do := newSessionHandlerEcho(t, userID)

	coord := entity.Coordinate{Latitude: 35.1, Longitude: 139.2}
	sessionUC.EXPECT().Click(mock.Anything, userID, coord).Return(&mapstate.FlowSnapshot{StateName: "draft_open"}, nil)
	code, _, _ := do(http.MethodPost, "/api/v1/session/clicks", `{"latitude":35.1,"longitude":139.2}`)
	assert.Equal(t, http.StatusOK, code)

	sessionUC.EXPECT().
		EditDraft(mock.Anything, userID, mock.MatchedBy(func(f mapstate.DraftFields) bool {
			return f.Title != nil && *f.Title == "Bakery" && f.Description == nil
		})).
		Return(&mapstate.FlowSnapshot{StateName: "draft_open"}, nil)
	code, _, _ = do(http.MethodPatch, "/api/v1/session/draft", `{"title":"Bakery"}`)
	assert.Equal(t, http.StatusOK, code)

	sessionUC.EXPECT().SubmitDraft(mock.Anything, userID).Return(nil, domainerrors.ErrSubmissionInFlight)
	code, env, _ := do(http.MethodPost, "/api/v1/session/draft/submit", "")
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SUBMISSION_IN_FLIGHT", env.Error.Code)
}

func TestSessionHandler_Markers(t *testing.T) {
	userID := uuid.New()
	sessionUC, do := newSessionHandlerEcho(t, userID)

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{139.7, 35.6}))
	sessionUC.EXPECT().Markers(mock.Anything, userID).Return(fc, nil)

	code, _, body := do(http.MethodGet, "/api/v1/session/markers", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"FeatureCollection"`)
}
