package service

import (
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// SubmitSchedule validates the delivery slot form and advances to payment.
func (m *Machine) SubmitSchedule(details d.ScheduleDetails) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != d.StepSchedule {
		return m.stateLocked(), ErrIllegalTransition
	}

	if errs := details.Validate(m.now()); errs != nil {
		return m.stateLocked(), errs
	}

	m.schedule = &details
	m.scheduleValid = true
	m.step = d.StepPayment
	return m.stateLocked(), nil
}
