package transport

import (
	"net/http"

	"mercato-be/internal/category"
	"mercato-be/internal/logger"
	"mercato-be/internal/middleware"
	"mercato-be/internal/order"
	"mercato-be/internal/product"
	"mercato-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler bundles the per-resource handlers for wiring.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Order    *OrderHandler
}

func NewHandler(users user.Service, products product.Service, categories category.Service, orders order.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(users, log),
		User:     NewUserHandler(users, log),
		Product:  NewProductHandler(products, log),
		Category: NewCategoryHandler(categories, log),
		Order:    NewOrderHandler(orders, log),
	}
}

// NewRouter configures the chi router: global middleware, public catalog
// routes, and authenticated route groups.
func NewRouter(h *Handler, users user.Service) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)

	// ==================== PUBLIC ROUTES ====================
	// Anonymous requests are rate limited by IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware)

		r.Post("/api/auth/register", h.Auth.Register)
		r.Post("/api/auth/login", h.Auth.Login)

		r.Get("/api/products", h.Product.List)
		r.Get("/api/products/search", h.Product.Search)
		r.Get("/api/products/{id}", h.Product.Get)

		r.Get("/api/categories", h.Category.List)
	})

	// ==================== AUTHENTICATED ROUTES ====================
	// The limiter runs after auth here so each user gets their own quota.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(users))
		r.Use(middleware.RateLimitMiddleware)

		r.Get("/api/users/me", h.User.Me)
		r.Put("/api/users/me", h.User.UpdateMe)

		r.Post("/api/orders", h.Order.Create)
		r.Get("/api/orders", h.Order.List)
		r.Get("/api/orders/{id}", h.Order.Get)

		// Catalog mutations need a vendor or admin role; ownership of the
		// individual product is enforced in the service.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(user.RoleVendor, user.RoleAdmin))

			r.Post("/api/products", h.Product.Create)
			r.Put("/api/products/{id}", h.Product.Update)
			r.Delete("/api/products/{id}", h.Product.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(user.RoleAdmin))

			r.Post("/api/categories", h.Category.Create)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
