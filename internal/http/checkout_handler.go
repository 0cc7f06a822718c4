package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	checkoutdomain "github.com/greenbasket/storefront/internal/checkout/domain"
	"github.com/greenbasket/storefront/internal/order"
)

type CheckoutHandler struct {
	tracker *order.Tracker
}

func NewCheckoutHandler(tracker *order.Tracker) *CheckoutHandler {
	return &CheckoutHandler{tracker: tracker}
}

type StepRequestDTO struct {
	Step string `json:"step"`
}

type PlacedOrderDTO struct {
	OrderID         string `json:"order_id"`
	Total           string `json:"total"`
	ConfirmationURL string `json:"confirmation_url"`
}

func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	respondJSON(w, http.StatusOK, sess.Checkout.State())
}

func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	state, err := sess.Checkout.Begin()
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (h *CheckoutHandler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	var details checkoutdomain.DeliveryDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	state, err := sess.Checkout.SubmitDelivery(details)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (h *CheckoutHandler) SubmitSchedule(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	var details checkoutdomain.ScheduleDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	state, err := sess.Checkout.SubmitSchedule(details)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// SubmitPayment places the order. On success the cart is already cleared and
// the checkout machine reset; the response carries the confirmation handoff.
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	var details checkoutdomain.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	total, err := sess.Checkout.SubmitPayment(details)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	placed := h.tracker.Place(total)
	totalStr := strconv.FormatFloat(placed.Total, 'f', 2, 64)

	sess.Panel.Refresh(nil)

	respondJSON(w, http.StatusCreated, PlacedOrderDTO{
		OrderID:         placed.ID,
		Total:           totalStr,
		ConfirmationURL: fmt.Sprintf("/order-confirmation?total=%s&order_id=%s", totalStr, placed.ID),
	})
}

func (h *CheckoutHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	var req StepRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	step, err := checkoutdomain.ParseStep(req.Step)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_step", err.Error())
		return
	}

	state, err := sess.Checkout.GoToStep(step)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (h *CheckoutHandler) BackToCart(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	respondJSON(w, http.StatusOK, sess.Checkout.BackToCart())
}
