package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pinmap/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "req-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.True(t, hasLogger)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestRequestIDMiddleware_TagsRouteAndPin(t *testing.T) {
	pinID := uuid.New()

	tests := []struct {
		name      string
		path      string
		param     string
		wantRoute string
		wantPin   bool
	}{
		{name: "pin route", path: "/api/v1/pins/:id", param: pinID.String(), wantRoute: "route=/api/v1/pins/:id", wantPin: true},
		{name: "malformed pin id", path: "/api/v1/pins/:id", param: "not-a-uuid", wantRoute: "route=/api/v1/pins/:id"},
		{name: "collection route", path: "/api/v1/session/pins", wantRoute: "route=/api/v1/session/pins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetPath(tt.path)
			if tt.param != "" {
				c.SetParamNames("id")
				c.SetParamValues(tt.param)
			}

			err := m.Process(func(c echo.Context) error {
				deliverycontext.GetLogger(c.Request().Context()).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			assert.Contains(t, buf.String(), tt.wantRoute)
			if tt.wantPin {
				assert.Contains(t, buf.String(), "pin_id="+pinID.String())
			} else {
				assert.NotContains(t, buf.String(), "pin_id=")
			}
		})
	}
}
