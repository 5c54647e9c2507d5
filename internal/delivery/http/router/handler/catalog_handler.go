// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the shopper-facing catalog surface.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns the full in-memory product list.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Products(), "Products retrieved successfully")
}

// GetCatalog returns the session's derived catalog view. Query parameters,
// when present, update the session's preferences before the view is derived.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	params := c.QueryParams()
	if params.Has("search") || params.Has("category") {
		h.uc.SetFilter(sessionID, params.Get("search"), params.Get("category"))
	}

	if params.Has("sort") {
		if err := h.uc.SetSort(sessionID, usecase.SortKey(params.Get("sort"))); err != nil {
			return errors.WithStack(err)
		}
	}

	if params.Has("grid") {
		if err := h.uc.SetGridSize(sessionID, usecase.GridSize(params.Get("grid"))); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, h.uc.View(sessionID), "Catalog retrieved successfully")
}

// GetSettings returns the store settings singleton.
func (h *CatalogHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Settings(), "Store settings retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
