package service

import (
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// SubmitDelivery validates the delivery form. An invalid submission returns
// the field errors and leaves the step unchanged; a valid one stores the
// details, unlocks the schedule tab and advances.
func (m *Machine) SubmitDelivery(details d.DeliveryDetails) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != d.StepDelivery {
		return m.stateLocked(), ErrIllegalTransition
	}

	if errs := details.Validate(); errs != nil {
		return m.stateLocked(), errs
	}

	m.delivery = &details
	m.deliveryValid = true
	m.step = d.StepSchedule
	return m.stateLocked(), nil
}
