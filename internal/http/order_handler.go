package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/greenbasket/storefront/internal/order"
)

type OrderHandler struct {
	tracker *order.Tracker
}

func NewOrderHandler(tracker *order.Tracker) *OrderHandler {
	return &OrderHandler{tracker: tracker}
}

type ConfirmationResponseDTO struct {
	Total    string `json:"total"`
	OrderID  string `json:"order_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

// Confirmation backs the order-confirmation view. Its only real input is the
// total query parameter from the checkout handoff; absent or malformed, it
// falls back to "0.00". The optional order_id enriches the page with the
// delivery progression.
func (h *OrderHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	total := "0.00"
	if raw := r.URL.Query().Get("total"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			total = strconv.FormatFloat(v, 'f', 2, 64)
		}
	}

	resp := ConfirmationResponseDTO{Total: total}

	if id := r.URL.Query().Get("order_id"); id != "" {
		o, err := h.tracker.Get(id)
		if err != nil && !errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
		if err == nil {
			status, progress := h.tracker.Progress(o)
			resp.OrderID = o.ID
			resp.Status = string(status)
			resp.Progress = progress
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
