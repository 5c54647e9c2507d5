package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository persists order inquiries. Orders are created once and
// never deleted here; listing exists for the admin panel.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindAll retrieves all orders, newest first.
	FindAll(ctx context.Context) ([]entity.Order, error)
}
