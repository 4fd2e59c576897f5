package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/fjod/go_marketplace/internal/catalog"
	"github.com/fjod/go_marketplace/internal/checkout"
	"github.com/fjod/go_marketplace/internal/session"
)

var validate = validator.New()

// NewRouter builds the HTTP router for the storefront. All state lives in
// the registry, store and calculator passed in; the router owns nothing.
func NewRouter(
	registry *session.Registry,
	store *catalog.Store,
	calculator *checkout.Calculator,
	requestTimeout time.Duration,
) http.Handler {
	authHandler := NewAuthHandler(registry)
	cartHandler := NewCartHandler(registry)
	checkoutHandler := NewCheckoutHandler(registry, calculator)
	catalogHandler := NewCatalogHandler(store, registry)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionTokenMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Demo Marketplace"})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Get("/catalogue", catalogHandler.Catalogue)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.MutateItems)
			r.Get("/modes", checkoutHandler.Modes)
			r.Post("/checkout", checkoutHandler.Checkout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/products", catalogHandler.AddProduct)
			r.Put("/products/{product_id}", catalogHandler.UpdateProduct)
			r.Delete("/products/{product_id}", catalogHandler.DeleteProduct)
			r.Post("/categories", catalogHandler.AddCategory)
			r.Delete("/categories/{category_id}", catalogHandler.DeleteCategory)
		})
	})

	return r
}
