package domain

import (
	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
)

type CartItem struct {
	Product  catalogdomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// Cart is an immutable snapshot of cart state. Mutation happens only through
// Apply, which returns a fresh snapshot and never touches its input.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal is recomputed from source prices and quantities on every call,
// never cached.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalQuantity feeds the header badge.
func (c Cart) TotalQuantity() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// ItemNames returns display names in insertion order, the request payload
// for the recommendation advisor.
func (c Cart) ItemNames() []string {
	names := make([]string, len(c.Items))
	for i, item := range c.Items {
		names[i] = item.Product.Name
	}
	return names
}

func (c Cart) clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
