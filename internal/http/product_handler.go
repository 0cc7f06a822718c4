package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	catalogservice "github.com/greenbasket/storefront/internal/catalog/service"
)

type ProductHandler struct {
	catalog *catalogservice.Catalog
}

func NewProductHandler(catalog *catalogservice.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.All())
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, ok := h.catalog.FindByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}
