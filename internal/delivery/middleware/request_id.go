package middleware

import (
	"log/slog"

	deliverycontext "pinmap/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client-supplied request IDs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id when it is sane, otherwise
// generates one, and stores the ID and a child logger on the request context.
// The logger also names the matched route and, on /pins/:id routes, the pin.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(requestAttrs(c, requestID)...)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestAttrs(c echo.Context, requestID string) []any {
	attrs := []any{slog.String("request_id", requestID)}
	if route := c.Path(); route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	// Malformed IDs are left to the handler, which rejects them.
	if pinID, err := uuid.Parse(c.Param("id")); err == nil {
		attrs = append(attrs, slog.Any("pin_id", pinID))
	}

	return attrs
}
