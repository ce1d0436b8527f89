package cart

import (
	"github.com/shopspring/decimal"

	"github.com/lojadev/checkout-service/internal/domain/customer"
)

// Item is a single cart line: a description and a unit price.
type Item struct {
	Description string
	Price       decimal.Decimal
}

// Cart holds a customer and the items they intend to purchase. It is built by
// the caller before checkout and never mutated by it. Item order is preserved
// for display; it does not affect the total.
type Cart struct {
	User  customer.User
	Items []Item
}

// Subtotal sums the item prices. An empty cart totals zero.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.Price)
	}
	return sum
}
