package service

import (
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// Begin moves the session from cart review into the delivery step. The
// transition is guarded on a non-empty cart.
func (m *Machine) Begin() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != d.StepCart {
		return m.stateLocked(), ErrIllegalTransition
	}
	if m.cart.Snapshot().IsEmpty() {
		return m.stateLocked(), ErrEmptyCart
	}

	m.step = d.StepDelivery
	return m.stateLocked(), nil
}
