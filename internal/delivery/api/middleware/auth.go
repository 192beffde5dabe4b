package middleware

import (
	"log/slog"
	"strings"

	"pinmap/internal/delivery/api/response"
	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyEmail  = "email"
)

// AuthMiddleware resolves the bearer token to the signed-in user.
type AuthMiddleware struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and stores the
// user ID on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.identity.Authenticate(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		c.Set(keyUserID, identity.UserID)
		c.Set(keyEmail, identity.Email)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithOwner(ctx, identity.UserID)))

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
