package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	checkoutdomain "github.com/greenbasket/storefront/internal/checkout/domain"
	checkoutservice "github.com/greenbasket/storefront/internal/checkout/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type FieldErrorResponse struct {
	Errors checkoutdomain.FieldErrors `json:"errors"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleCheckoutError maps machine errors to HTTP statuses. Field-level
// validation failures carry their per-field messages; guard violations are
// conflicts, not server errors.
func handleCheckoutError(w http.ResponseWriter, err error) {
	var fieldErrs checkoutdomain.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusUnprocessableEntity, FieldErrorResponse{Errors: fieldErrs})
		return
	}

	switch {
	case errors.Is(err, checkoutservice.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, checkoutservice.ErrStepLocked):
		respondError(w, http.StatusConflict, "step_locked", err.Error())
	case errors.Is(err, checkoutservice.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
