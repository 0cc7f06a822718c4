package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	catalogservice "github.com/greenbasket/storefront/internal/catalog/service"
	"github.com/greenbasket/storefront/internal/order"
	"github.com/greenbasket/storefront/internal/session"
)

type RouterDeps struct {
	Catalog        *catalogservice.Catalog
	Registry       *session.Registry
	Tracker        *order.Tracker
	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) chi.Router {
	productHandler := NewProductHandler(deps.Catalog)
	cartHandler := NewCartHandler(deps.Catalog)
	checkoutHandler := NewCheckoutHandler(deps.Tracker)
	recommendationsHandler := NewRecommendationsHandler()
	orderHandler := NewOrderHandler(deps.Tracker)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(deps.Registry))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Get("/{id}", productHandler.GetProduct)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})
		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", recommendationsHandler.GetRecommendations)
			r.Post("/refresh", recommendationsHandler.Refresh)
		})
		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetState)
			r.Post("/begin", checkoutHandler.Begin)
			r.Post("/delivery", checkoutHandler.SubmitDelivery)
			r.Post("/schedule", checkoutHandler.SubmitSchedule)
			r.Post("/payment", checkoutHandler.SubmitPayment)
			r.Post("/step", checkoutHandler.GoToStep)
			r.Post("/back", checkoutHandler.BackToCart)
		})
	})

	r.Get("/order-confirmation", orderHandler.Confirmation)

	return r
}
