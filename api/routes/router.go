package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickkart/quickkart-backend/api/controllers"
	"github.com/quickkart/quickkart-backend/api/middleware"
	"github.com/quickkart/quickkart-backend/internal/account"
	"github.com/quickkart/quickkart-backend/internal/cart"
	"github.com/quickkart/quickkart-backend/internal/catalog"
	"github.com/quickkart/quickkart-backend/internal/orders"
	"github.com/quickkart/quickkart-backend/pkg/auth/session"
	"github.com/quickkart/quickkart-backend/pkg/config"
	"github.com/quickkart/quickkart-backend/pkg/logger"
	"github.com/quickkart/quickkart-backend/pkg/metrics"
)

type sessionManager interface {
	session.AccessSessionChecker
	Register(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	m *metrics.StorefrontMetrics,
	metricsHandler http.Handler,
	sessions sessionManager,
	accountService account.Service,
	catalogService catalog.Service,
	cartService cart.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, m),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(accountService, sessions, cfg.JWT, logg, m))
		r.Post("/signup", controllers.AuthSignup(accountService, sessions, cfg.JWT, logg, m))
		r.Post("/logout", controllers.AuthLogout(accountService, sessions, cfg.JWT, logg))
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogProducts(catalogService, logg))
		r.Get("/products/{productID}", controllers.CatalogProduct(catalogService, logg))
		r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
		r.Get("/offers", controllers.CatalogOffers(catalogService, logg))
		r.Get("/search", controllers.CatalogSearch(catalogService, logg))
		r.Get("/search/recent", controllers.CatalogRecentSearches(catalogService, logg))
	})

	// The cart is session-local and carries no user precondition, so it sits
	// outside the auth fence alongside the catalog.
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.CartGet(cartService, logg))
		r.Post("/items", controllers.CartAddItem(cartService, catalogService, logg, m))
		r.Post("/items/{productID}/remove", controllers.CartRemoveItem(cartService, logg, m))
		r.Delete("/items/{productID}", controllers.CartDeleteItem(cartService, logg, m))
		r.Delete("/", controllers.CartClear(cartService, logg, m))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Get("/me", controllers.AuthMe(accountService, logg))

		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", controllers.AddressList(accountService, logg))
			r.Post("/", controllers.AddressCreate(accountService, logg))
			r.Get("/default", controllers.AddressGetDefault(accountService, logg))
			r.Put("/{addressID}", controllers.AddressUpdate(accountService, logg))
			r.Delete("/{addressID}", controllers.AddressDelete(accountService, logg))
			r.Post("/{addressID}/default", controllers.AddressSetDefault(accountService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ordersService, logg))
			r.Post("/checkout", controllers.OrdersCheckout(ordersService, logg))
			r.Get("/{orderID}", controllers.OrdersGet(ordersService, logg))
			r.Post("/{orderID}/cancel", controllers.OrdersCancel(ordersService, logg))
		})
	})

	return r
}
