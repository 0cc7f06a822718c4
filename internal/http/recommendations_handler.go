package http

import (
	"net/http"

	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
)

type RecommendationsHandler struct{}

func NewRecommendationsHandler() *RecommendationsHandler {
	return &RecommendationsHandler{}
}

type RecommendationsResponseDTO struct {
	Items   []catalogdomain.Product `json:"items"`
	Pending bool                    `json:"pending"`
}

// GetRecommendations returns the panel as it currently stands. While a
// refresh is in flight, pending is true and items hold the previous result.
func (h *RecommendationsHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	items, pending := sess.Panel.Current()
	if items == nil {
		items = []catalogdomain.Product{}
	}

	respondJSON(w, http.StatusOK, RecommendationsResponseDTO{
		Items:   items,
		Pending: pending,
	})
}

// Refresh issues an advisor request for the current cart contents and
// returns without waiting for it.
func (h *RecommendationsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	sess.Panel.Refresh(sess.Cart.Snapshot().ItemNames())
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"})
}
