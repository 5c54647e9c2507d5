// Package repository defines the persistence boundaries consumed by the
// use cases. Implementations live under internal/infra.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when a product does not exist in storage.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a create collides with an existing product.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductPatch carries a partial update. Nil fields are left untouched.
// Quantity may legitimately be set negative (the "coming soon" sentinel).
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Category    *string
	Quantity    *int
	Image       *string
	Description *string
}

// ProductRepository persists catalog products. Create and CreateBulk assign
// identifiers and timestamps; Update stamps UpdatedAt.
type ProductRepository interface {
	// FindAll retrieves the full product list, oldest first.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product, filling in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, product *entity.Product) error

	// CreateBulk persists a batch of drafts in one call and returns the
	// created products with generated identifiers and timestamps.
	CreateBulk(ctx context.Context, drafts []entity.ProductDraft) ([]entity.Product, error)

	// Update applies a partial update and returns the updated product.
	Update(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id string) error
}
