package entity

import "github.com/shopspring/decimal"

// CartItem is a (product, quantity) pair inside a shopper's cart.
// The product is snapshotted by value so an order keeps the price the
// shopper saw even if the catalog changes afterwards.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the subtotals of all lines.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}

	return total
}
