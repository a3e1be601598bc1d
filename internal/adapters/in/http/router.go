package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"alwarmart/internal/adapters/in/http/handlers"
	"alwarmart/internal/platform/di"
)

// NewRouter mounts the admin console API.
func NewRouter(c *di.Container, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/catalog", handlers.NewCatalogHandler(c.Catalog).Load)

	r.Route("/products", handlers.NewProductHandler(c.Products).Routes)
	r.Route("/brands", handlers.NewBrandHandler(c.Brands).Routes)
	r.Route("/categories", handlers.NewCategoryHandler(c.Categories).Routes)
	r.Route("/subcategories", handlers.NewSubCategoryHandler(c.SubCategories).Routes)
	r.Route("/adsproducts", handlers.NewAdsProductHandler(c.AdsProducts).Routes)

	if c.Orders != nil {
		r.Route("/orders", handlers.NewOrderHandler(c.Orders, c.OrderConfirm).Routes)
	}

	return r
}
