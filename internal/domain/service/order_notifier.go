package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderNotifier delivers a notification to the store operator after an order
// inquiry has been persisted. Delivery is fire-and-forget: a failed send is
// logged by the caller and never blocks order completion.
type OrderNotifier interface {
	// NotifyOrder sends a notification for a freshly persisted order.
	NotifyOrder(ctx context.Context, order *entity.Order) error

	// Close releases any resources held by the notifier.
	Close() error
}
