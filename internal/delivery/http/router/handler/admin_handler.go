package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AdminHandler serves the admin panel: login, product CRUD, bulk import,
// store settings and the order list.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Quantity    *int             `json:"quantity"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
}

// Login verifies the credential pair and flips the session's admin flag.
func (h *AdminHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username and password are required")
	}

	if err := h.uc.Login(c.Request().Context(), middleware.SessionID(c), input.Username, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"admin": true}, "Login successful")
}

// Logout clears the session's admin flag.
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"admin": false}, "Logout successful")
}

// CreateProduct persists a single new product.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var draft entity.ProductDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// CreateProductsBulk persists a JSON array of product drafts in one call.
// Any non-array body is rejected before a single record is considered.
func (h *AdminHandler) CreateProductsBulk(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Failed to read request body")
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return domainerrors.ErrBulkBodyNotArray
	}

	var drafts []entity.ProductDraft
	if err := json.Unmarshal(trimmed, &drafts); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product array")
	}

	products, err := h.uc.CreateProducts(c.Request().Context(), drafts)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, products, "Products created successfully")
}

// ImportProducts parses a newline-delimited plain-text batch and creates the
// records in one bulk call. The first malformed line rejects the whole batch.
func (h *AdminHandler) ImportProducts(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Failed to read request body")
	}

	products, err := h.uc.BulkImport(c.Request().Context(), string(body))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, products, "Products imported successfully")
}

// UpdateProduct applies a partial product update.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input updateProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	patch := repository.ProductPatch{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Image:       input.Image,
		Description: input.Description,
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product. Cart lines referencing it survive until
// the shopper's next mutation of that line.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UpdateSettings replaces the store settings singleton wholesale.
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var settings entity.StoreSettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	updated, err := h.uc.UpdateSettings(c.Request().Context(), &settings)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Store settings updated successfully")
}

// ListOrders returns every order inquiry, newest first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
