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

// CartHandler serves the session-scoped shopping cart.
type CartHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart contents.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Cart(middleware.SessionID(c)), "Cart retrieved successfully")
}

// AddItem inserts or tops up a cart line. The stored quantity is clamped to
// the product's live stock.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Product ID is required")
	}

	items, err := h.uc.AddToCart(middleware.SessionID(c), input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Item added to cart")
}

// UpdateItem replaces a cart line's quantity verbatim; a non-positive value
// removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input updateItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	items := h.uc.UpdateCartQuantity(middleware.SessionID(c), c.Param("productId"), input.Quantity)

	return response.Success(c, http.StatusOK, items, "Cart updated")
}

// RemoveItem deletes a cart line if present.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	items := h.uc.RemoveFromCart(middleware.SessionID(c), c.Param("productId"))

	return response.Success(c, http.StatusOK, items, "Item removed from cart")
}
