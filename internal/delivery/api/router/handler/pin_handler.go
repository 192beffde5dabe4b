package handler

import (
	"log/slog"
	"net/http"

	"pinmap/internal/delivery/api/response"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/errors"
	"pinmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PinHandlerParams holds dependencies for PinHandler, injected by Fx.
type PinHandlerParams struct {
	fx.In

	PinUC  usecase.PinUsecase
	Logger *slog.Logger
}

// PinHandler serves the stateless pin endpoints.
type PinHandler struct {
	pinUC  usecase.PinUsecase
	logger *slog.Logger
}

// NewPinHandler is the constructor for PinHandler
func NewPinHandler(params PinHandlerParams) *PinHandler {
	return &PinHandler{
		pinUC:  params.PinUC,
		logger: params.Logger,
	}
}

// CreatePinRequest represents the request body for creating a pin
type CreatePinRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Category    entity.Category `json:"category"`
	Latitude    float64         `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64         `json:"longitude" validate:"min=-180,max=180"`
}

// UpdatePinRequest represents the request body for a metadata update
type UpdatePinRequest struct {
	Category   *entity.Category `json:"category,omitempty"`
	IsFavorite *bool            `json:"is_favorite,omitempty"`
}

func (r UpdatePinRequest) patch() entity.PinPatch {
	return entity.PinPatch{Category: r.Category, IsFavorite: r.IsFavorite}
}

// ListPins returns the caller's pins, optionally within radius_km of lat/lng.
func (h *PinHandler) ListPins(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	query, err := nearbyQuery(c)
	if err != nil {
		return err
	}

	pins, err := h.pinUC.ListPins(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pins)
}

// CreatePin stores a new pin.
func (h *PinHandler) CreatePin(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreatePinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	draft := entity.PinDraft{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Coordinate:  entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
	}
	pin, err := h.pinUC.CreatePin(c.Request().Context(), userID, draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pin)
}

// UpdatePin changes a pin's category or favorite flag.
func (h *PinHandler) UpdatePin(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdatePinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pin, err := h.pinUC.UpdatePin(c.Request().Context(), userID, id, req.patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pin)
}

// DeletePin removes a pin.
func (h *PinHandler) DeletePin(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.pinUC.DeletePin(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// nearbyQuery reads lat, lng and radius_km. Without lat and lng the listing is unfiltered.
func nearbyQuery(c echo.Context) (usecase.NearbyQuery, error) {
	if c.QueryParam("lat") == "" && c.QueryParam("lng") == "" {
		return usecase.NearbyQuery{}, nil
	}

	var lat, lng, radiusKm float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		MustFloat64("radius_km", &radiusKm).
		BindError()
	if err != nil {
		var bindErr *echo.BindingError
		verr := domainerrors.NewValidationError()
		if errors.As(err, &bindErr) && len(bindErr.Field) > 0 {
			verr.Add(bindErr.Field, "must be a number")
		} else {
			verr.Add("query", "invalid query parameters")
		}

		return usecase.NearbyQuery{}, verr
	}

	return usecase.NearbyQuery{
		Center:   &entity.Coordinate{Latitude: lat, Longitude: lng},
		RadiusKm: radiusKm,
	}, nil
}
