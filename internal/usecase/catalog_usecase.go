// Package usecase defines the application use case interfaces and their
// request/response types.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SortKey selects the ordering of the derived catalog view.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
)

// Valid reports whether the key is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortPriceAsc, SortPriceDesc, SortName:
		return true
	default:
		return false
	}
}

// GridSize is the shopper's grid layout preference.
type GridSize string

const (
	GridSmall  GridSize = "small"
	GridMedium GridSize = "medium"
	GridLarge  GridSize = "large"
)

// Valid reports whether the size is one of the supported layouts.
func (g GridSize) Valid() bool {
	switch g {
	case GridSmall, GridMedium, GridLarge:
		return true
	default:
		return false
	}
}

// Columns returns the widest column count the layout uses.
func (g GridSize) Columns() int {
	switch g {
	case GridSmall:
		return 5
	case GridLarge:
		return 3
	default:
		return 4
	}
}

// ViewPreferences is the per-session search/filter/sort/layout state.
type ViewPreferences struct {
	SearchTerm string   `json:"searchTerm"`
	Category   string   `json:"category"`
	Sort       SortKey  `json:"sort"`
	Grid       GridSize `json:"grid"`
}

// CatalogView is the derived, shopper-facing slice of the catalog.
type CatalogView struct {
	Products    []entity.Product     `json:"products"`
	Settings    entity.StoreSettings `json:"settings"`
	Preferences ViewPreferences      `json:"preferences"`
	Stale       bool                 `json:"stale"` // True when serving the fallback snapshot.
}

// CatalogUsecase is the single source of truth for the shopper-facing view
// and the transaction that turns a cart into an order. Cart contents and view
// preferences are scoped by an opaque session ID.
type CatalogUsecase interface {
	// LoadCatalog fetches products and settings; on failure of either it
	// falls back to the last-known snapshot. The manager is fully
	// initialized afterwards regardless of which path succeeded.
	LoadCatalog(ctx context.Context) error

	// RefreshProducts re-fetches the product list into memory.
	RefreshProducts(ctx context.Context) error

	// RefreshSettings re-fetches the settings singleton into memory.
	RefreshSettings(ctx context.Context) error

	// Products returns the current in-memory product list.
	Products() []entity.Product

	// Settings returns the current in-memory store settings.
	Settings() entity.StoreSettings

	// View derives the filtered and sorted catalog for a session.
	View(sessionID string) *CatalogView

	// SetFilter updates the session's search term and category filter.
	SetFilter(sessionID, searchTerm, category string)

	// SetSort updates the session's sort key.
	SetSort(sessionID string, key SortKey) error

	// SetGridSize updates the session's grid layout preference.
	SetGridSize(sessionID string, size GridSize) error

	// Cart returns the session's cart contents.
	Cart(sessionID string) []entity.CartItem

	// AddToCart inserts or tops up a cart line, clamped to live stock.
	// Products that are out of stock or coming soon are ignored.
	AddToCart(sessionID, productID string, quantity int) ([]entity.CartItem, error)

	// UpdateCartQuantity replaces a line's quantity; non-positive removes it.
	UpdateCartQuantity(sessionID, productID string, quantity int) []entity.CartItem

	// RemoveFromCart deletes a line if present.
	RemoveFromCart(sessionID, productID string) []entity.CartItem

	// SubmitOrder persists the order built from the session's cart, then
	// sequentially decrements product stock, refreshes the catalog, fires
	// the order notification and clears the cart.
	SubmitOrder(ctx context.Context, sessionID, customerName string) (*entity.Order, error)
}
