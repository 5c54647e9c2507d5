package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order inquiry through its lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// Order is a non-binding purchase inquiry built from a cart at checkout.
// The item list is a snapshot taken at submission time and never changes;
// only the status may transition afterwards.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
