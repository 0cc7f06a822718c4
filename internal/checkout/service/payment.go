package service

import (
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// SubmitPayment validates the card form and places the order. On success the
// cart is cleared, all three form records are discarded, the machine resets
// to the cart step and the final total (subtotal + delivery fee) is handed
// back for the confirmation view. No payment is actually captured.
func (m *Machine) SubmitPayment(details d.PaymentDetails) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != d.StepPayment {
		return 0, ErrIllegalTransition
	}

	if errs := details.Validate(); errs != nil {
		return 0, errs
	}

	total := d.Round2(m.cart.Subtotal() + d.DeliveryFee)
	m.cart.ClearCart()
	m.resetLocked()
	return total, nil
}
