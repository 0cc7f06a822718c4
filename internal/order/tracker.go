package order

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPlaced         Status = "Order Placed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// stages in delivery order with the progress percent shown for each.
var stages = []struct {
	status   Status
	progress int
}{
	{StatusPlaced, 10},
	{StatusPreparing, 40},
	{StatusOutForDelivery, 75},
	{StatusDelivered, 100},
}

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID       string    `json:"id"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// Tracker records placed orders and derives their delivery status from time
// elapsed since placement: one stage per interval. There is no real
// fulfillment behind it; the progression exists for the confirmation view.
type Tracker struct {
	mu       sync.RWMutex
	orders   map[string]Order
	interval time.Duration
	now      func() time.Time
}

func NewTracker(interval time.Duration, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		orders:   make(map[string]Order),
		interval: interval,
		now:      now,
	}
}

func (t *Tracker) Place(total float64) Order {
	t.mu.Lock()
	defer t.mu.Unlock()

	o := Order{
		ID:       uuid.New().String(),
		Total:    total,
		PlacedAt: t.now(),
	}
	t.orders[o.ID] = o
	return o
}

func (t *Tracker) Get(id string) (Order, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	o, ok := t.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Progress returns the order's current stage and progress percent.
func (t *Tracker) Progress(o Order) (Status, int) {
	elapsed := t.now().Sub(o.PlacedAt)
	idx := int(elapsed / t.interval)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stages) {
		idx = len(stages) - 1
	}
	return stages[idx].status, stages[idx].progress
}
