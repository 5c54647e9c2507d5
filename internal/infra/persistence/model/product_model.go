package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Quantity intentionally has no non-negative constraint: negative values
// are the "coming soon" sentinel and must round-trip untouched.
type ProductModel struct {
	ID          string          `gorm:"type:varchar(64);primary_key"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Quantity    int             `gorm:"not null"`
	Image       string          `gorm:"type:text"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
