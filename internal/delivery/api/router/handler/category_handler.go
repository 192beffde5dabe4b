package handler

import (
	"net/http"

	"pinmap/internal/delivery/api/response"
	"pinmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category lookup table.
type CategoryHandler struct{}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns every category in display order.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Categories())
}
