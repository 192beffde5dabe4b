package handler

import (
	"log/slog"
	"net/http"

	"pinmap/internal/delivery/api/response"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/errors"
	"pinmap/internal/mapstate"
	"pinmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contentTypeGeoJSON = "application/geo+json"

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.MapSessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the interactive map session.
type SessionHandler struct {
	sessionUC usecase.MapSessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ClickRequest is a click on the map
type ClickRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// EditDraftRequest carries the draft fields to change
type EditDraftRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *entity.Category `json:"category,omitempty"`
}

// DeletePinResponse reports what a session delete did
type DeletePinResponse struct {
	Outcome usecase.DeleteOutcome `json:"outcome"`
}

// Start opens (or reloads) the caller's map session.
func (h *SessionHandler) Start(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	view, err := h.sessionUC.Start(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// End tears the session down at sign-out.
func (h *SessionHandler) End(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.End(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Pins lists the session collection. order is insertion (default) or recent.
func (h *SessionHandler) Pins(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	order := usecase.PinOrder(c.QueryParam("order"))
	switch order {
	case "":
		order = usecase.PinOrderInsertion
	case usecase.PinOrderInsertion, usecase.PinOrderRecent:
	default:
		return domainerrors.NewValidationError().Add("order", "must be one of: insertion recent")
	}

	pins, err := h.sessionUC.Pins(c.Request().Context(), userID, order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pins)
}

// UpdatePin changes a session pin's metadata.
func (h *SessionHandler) UpdatePin(c echo.Context) error {
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

	pin, err := h.sessionUC.UpdatePin(c.Request().Context(), userID, id, req.patch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pin)
}

// DeletePin deletes a pin. Unknown pins report outcome not_found with 200.
func (h *SessionHandler) DeletePin(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	outcome, err := h.sessionUC.DeletePin(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeletePinResponse{Outcome: outcome})
}

// Click opens a draft at the clicked coordinate, or moves the open one.
func (h *SessionHandler) Click(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ClickRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	coord := entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	snap, err := h.sessionUC.Click(c.Request().Context(), userID, coord)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// Draft returns the creation flow state.
func (h *SessionHandler) Draft(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	snap, err := h.sessionUC.Draft(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// EditDraft changes the open draft's text fields.
func (h *SessionHandler) EditDraft(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req EditDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	fields := mapstate.DraftFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	snap, err := h.sessionUC.EditDraft(c.Request().Context(), userID, fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// CancelDraft discards the open draft.
func (h *SessionHandler) CancelDraft(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	snap, err := h.sessionUC.CancelDraft(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// SubmitDraft persists the open draft.
func (h *SessionHandler) SubmitDraft(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	pin, err := h.sessionUC.SubmitDraft(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pin)
}

// Markers returns the rendered markers as a GeoJSON FeatureCollection.
func (h *SessionHandler) Markers(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	fc, err := h.sessionUC.Markers(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode markers")
	}

	return c.Blob(http.StatusOK, contentTypeGeoJSON, body)
}

// Export writes a GeoJSON snapshot of the session pins to the bucket.
func (h *SessionHandler) Export(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	result, err := h.sessionUC.Export(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
