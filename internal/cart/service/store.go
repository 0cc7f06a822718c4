package service

import (
	"sync"

	"github.com/greenbasket/storefront/internal/cart/domain"
	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
)

// Store is the single owner of one shopper's cart state. Dispatch serializes
// every mutation behind the mutex, so observers (badge, checkout, advisor)
// only ever see complete snapshots.
type Store struct {
	mu    sync.RWMutex
	state domain.Cart
}

func NewStore() *Store {
	return &Store{}
}

// Dispatch runs the reducer and installs the resulting snapshot. The
// returned cart is the new state and safe to hand out.
func (s *Store) Dispatch(action domain.Action) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.Apply(s.state, action)
	return s.state
}

func (s *Store) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Subtotal() float64 {
	return s.Snapshot().Subtotal()
}

func (s *Store) AddToCart(product catalogdomain.Product) domain.Cart {
	return s.Dispatch(domain.AddToCart{Product: product})
}

func (s *Store) RemoveFromCart(productID int64) domain.Cart {
	return s.Dispatch(domain.RemoveFromCart{ProductID: productID})
}

func (s *Store) UpdateQuantity(productID int64, quantity int) domain.Cart {
	return s.Dispatch(domain.UpdateQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) ClearCart() domain.Cart {
	return s.Dispatch(domain.ClearCart{})
}
