// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a single catalog item offered by the store.
type Product struct {
	ID          string          `json:"id"`          // Opaque server-minted identifier.
	Name        string          `json:"name"`        // Display name, also the search target.
	Price       decimal.Decimal `json:"price"`       // Non-negative, currency-agnostic.
	Category    string          `json:"category"`    // Must belong to the store's configured category set.
	Quantity    int             `json:"quantity"`    // Tri-state stock encoding, see StockStatus.
	Image       string          `json:"image"`       // Image reference (URL).
	Description string          `json:"description"` // Free-form description text.
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// StockStatus is the shopper-facing availability of a product.
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockOutOfStock StockStatus = "out-of-stock"
	StockComingSoon StockStatus = "coming-soon"
)

// StockStatus maps the quantity tri-state onto availability.
// Negative quantity is an intentional sentinel meaning "coming soon",
// distinct from zero ("out of stock"). It must be preserved, not normalized.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Quantity > 0:
		return StockInStock
	case p.Quantity == 0:
		return StockOutOfStock
	default:
		return StockComingSoon
	}
}

// StockLabel renders the availability as display text.
func (p *Product) StockLabel() string {
	switch p.StockStatus() {
	case StockInStock:
		return fmt.Sprintf("in stock (%d)", p.Quantity)
	case StockOutOfStock:
		return "out of stock"
	default:
		return "coming soon"
	}
}

// Orderable reports whether the product can be added to a cart.
// Both "out of stock" and "coming soon" are not orderable.
func (p *Product) Orderable() bool {
	return p.Quantity > 0
}

// ProductDraft holds the admin-supplied fields of a product before the
// persistence layer assigns an ID and timestamps.
type ProductDraft struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
