package service

import (
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// GoToStep is lateral tab navigation between checkout steps. A step is
// reachable only once its preceding guard has passed at least once in this
// session; the shopper can revisit delivery from schedule, but cannot jump
// forward past an unvalidated step.
func (m *Machine) GoToStep(target d.Step) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.step.IsCheckout() || !target.IsCheckout() {
		return m.stateLocked(), ErrIllegalTransition
	}

	switch target {
	case d.StepDelivery:
		// Reachable from any checkout step.
	case d.StepSchedule:
		if !m.deliveryValid {
			return m.stateLocked(), ErrStepLocked
		}
	case d.StepPayment:
		if !m.scheduleValid {
			return m.stateLocked(), ErrStepLocked
		}
	}

	m.step = target
	return m.stateLocked(), nil
}

// BackToCart returns to cart review from any checkout step. Entered form
// values and unlocked tabs are retained for re-entry; only placement
// discards them.
func (m *Machine) BackToCart() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.step = d.StepCart
	return m.stateLocked()
}
