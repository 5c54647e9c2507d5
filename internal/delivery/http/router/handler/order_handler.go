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

// OrderHandler turns a session's cart into a persisted order inquiry.
type OrderHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitOrderRequest struct {
	CustomerName string `json:"customerName"`
}

// SubmitOrder persists the order built from the session's cart. Stock is
// decremented per line after the order row exists; a mid-sequence failure
// leaves earlier decrements in place and reports the order as recorded.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	var input submitOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.SubmitOrder(c.Request().Context(), middleware.SessionID(c), input.CustomerName)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order submitted successfully")
}
