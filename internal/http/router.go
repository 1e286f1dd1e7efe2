package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Products  *ProductHandler
	Cart      *CartHandler
	Coupons   *CouponHandler
	Checkout  *CheckoutHandler
	Orders    *OrdersHandler
	FakeStore *FakeStoreHandler
}

func NewRouter(h Handlers, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(UserIDMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.List)
			r.Get("/{id}", h.Products.Get)
			r.Get("/category/{category}", h.Products.ListByCategory)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Post("/", h.Cart.AddItem)
			r.Put("/{id}", h.Cart.UpdateItem)
			r.Delete("/{id}", h.Cart.RemoveItem)

			r.Post("/apply-coupon", h.Coupons.Apply)
			r.Delete("/coupon/remove", h.Coupons.Remove)

			r.Post("/checkout", h.Checkout.Checkout)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Orders.List)
			r.Get("/{id}", h.Orders.Get)
		})

		r.Route("/fakestore", func(r chi.Router) {
			r.Get("/products", h.FakeStore.Products)
			r.Get("/categories", h.FakeStore.Categories)
			r.Post("/import", h.FakeStore.Import)
		})
	})

	return r
}
