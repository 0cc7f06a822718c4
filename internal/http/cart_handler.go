package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	cartdomain "github.com/greenbasket/storefront/internal/cart/domain"
	catalogservice "github.com/greenbasket/storefront/internal/catalog/service"
	checkoutdomain "github.com/greenbasket/storefront/internal/checkout/domain"
)

type CartHandler struct {
	catalog *catalogservice.Catalog
}

func NewCartHandler(catalog *catalogservice.Catalog) *CartHandler {
	return &CartHandler{catalog: catalog}
}

// maxLineQuantity is the shelf limit for a single cart line.
const maxLineQuantity = 99

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items         []cartdomain.CartItem `json:"items"`
	Subtotal      float64               `json:"subtotal"`
	TotalQuantity int                   `json:"total_quantity"`
}

func convertCart(c cartdomain.Cart) CartResponseDTO {
	items := c.Items
	if items == nil {
		items = []cartdomain.CartItem{}
	}
	return CartResponseDTO{
		Items:         items,
		Subtotal:      checkoutdomain.Round2(c.Subtotal()),
		TotalQuantity: c.TotalQuantity(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	respondJSON(w, http.StatusOK, convertCart(sess.Cart.Snapshot()))
}

// AddItem adds one unit of the product: a repeat add increments the existing
// line instead of creating a second one.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, ok := h.catalog.FindByID(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	for _, item := range sess.Cart.Snapshot().Items {
		if item.Product.ID == req.ProductID && item.Quantity >= maxLineQuantity {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
			return
		}
	}

	cart := sess.Cart.AddToCart(product)
	sess.Panel.Refresh(cart.ItemNames())

	respondJSON(w, http.StatusCreated, convertCart(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero and below removes the line, matching the minus button on the last
	// unit. Anything above the shelf limit is rejected.
	if req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	cart := sess.Cart.UpdateQuantity(productID, req.Quantity)
	sess.Panel.Refresh(cart.ItemNames())

	respondJSON(w, http.StatusOK, convertCart(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	cart := sess.Cart.RemoveFromCart(productID)
	sess.Panel.Refresh(cart.ItemNames())

	respondJSON(w, http.StatusOK, convertCart(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess := getSessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "no_session", "missing shopper session")
		return
	}

	cart := sess.Cart.ClearCart()
	sess.Panel.Refresh(cart.ItemNames())

	respondJSON(w, http.StatusOK, convertCart(cart))
}
