package domain

import (
	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
)

// Action is the tagged union of cart commands. All mutation flows through
// Apply so the invariants (quantity >= 1, at most one item per product ID)
// hold by construction.
type Action interface {
	isAction()
}

type AddToCart struct {
	Product catalogdomain.Product
}

type RemoveFromCart struct {
	ProductID int64
}

type UpdateQuantity struct {
	ProductID int64
	Quantity  int
}

type ClearCart struct{}

func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// Apply is the pure cart reducer: (state, action) -> state'. Unknown product
// IDs are a no-op, not an error.
func Apply(state Cart, action Action) Cart {
	switch a := action.(type) {
	case AddToCart:
		next := state.clone()
		for i := range next.Items {
			if next.Items[i].Product.ID == a.Product.ID {
				next.Items[i].Quantity++
				return next
			}
		}
		next.Items = append(next.Items, CartItem{Product: a.Product, Quantity: 1})
		return next

	case RemoveFromCart:
		return removeItem(state, a.ProductID)

	case UpdateQuantity:
		// Non-positive quantity means removal; an item is never stored with
		// quantity below 1.
		if a.Quantity <= 0 {
			return removeItem(state, a.ProductID)
		}
		next := state.clone()
		for i := range next.Items {
			if next.Items[i].Product.ID == a.ProductID {
				next.Items[i].Quantity = a.Quantity
				return next
			}
		}
		return next

	case ClearCart:
		return Cart{}

	default:
		return state
	}
}

func removeItem(state Cart, productID int64) Cart {
	next := Cart{Items: make([]CartItem, 0, len(state.Items))}
	for _, item := range state.Items {
		if item.Product.ID != productID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}
