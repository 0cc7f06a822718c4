package service

import (
	"sync"
	"time"

	cartservice "github.com/greenbasket/storefront/internal/cart/service"
	d "github.com/greenbasket/storefront/internal/checkout/domain"
)

// Machine drives one shopper's checkout session through the guarded linear
// flow cart -> delivery -> schedule -> payment -> placed. It owns the
// transient form records; on placement they are discarded and the machine
// resets to the cart step.
type Machine struct {
	mu   sync.Mutex
	cart *cartservice.Store
	now  func() time.Time

	step     d.Step
	delivery *d.DeliveryDetails
	schedule *d.ScheduleDetails
	payment  *d.PaymentDetails

	// Validity flags unlock lateral tab navigation. They survive back-to-cart
	// within a session; placement resets them.
	deliveryValid bool
	scheduleValid bool
}

func NewMachine(cart *cartservice.Store, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{
		cart: cart,
		now:  now,
		step: d.StepCart,
	}
}

// State is a point-in-time view of the session for the checkout UI.
type State struct {
	Step          d.Step              `json:"step"`
	DeliveryValid bool                `json:"delivery_valid"`
	ScheduleValid bool                `json:"schedule_valid"`
	Delivery      *d.DeliveryDetails  `json:"delivery,omitempty"`
	Schedule      *d.ScheduleDetails  `json:"schedule,omitempty"`
	Payment       *d.PaymentDetails   `json:"payment,omitempty"`
	Subtotal      float64             `json:"subtotal"`
	DeliveryFee   float64             `json:"delivery_fee"`
	Total         float64             `json:"total"`
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Machine) stateLocked() State {
	subtotal := m.cart.Subtotal()
	return State{
		Step:          m.step,
		DeliveryValid: m.deliveryValid,
		ScheduleValid: m.scheduleValid,
		Delivery:      m.delivery,
		Schedule:      m.schedule,
		Payment:       m.payment,
		Subtotal:      d.Round2(subtotal),
		DeliveryFee:   d.DeliveryFee,
		Total:         d.Round2(subtotal + d.DeliveryFee),
	}
}

func (m *Machine) resetLocked() {
	m.step = d.StepCart
	m.delivery = nil
	m.schedule = nil
	m.payment = nil
	m.deliveryValid = false
	m.scheduleValid = false
}
