package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The item snapshot is stored as a JSONB document: orders are written once
// and read back whole, never queried by line item.
type OrderModel struct {
	ID           string          `gorm:"type:varchar(64);primary_key"`
	CustomerName string          `gorm:"type:varchar(255);not null"`
	Items        []byte          `gorm:"type:jsonb;not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
