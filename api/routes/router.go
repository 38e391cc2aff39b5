package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eshop-labs/storefront-api/api/controllers"
	"github.com/eshop-labs/storefront-api/api/middleware"
	authsvc "github.com/eshop-labs/storefront-api/internal/auth"
	cartsvc "github.com/eshop-labs/storefront-api/internal/cart"
	"github.com/eshop-labs/storefront-api/internal/catalog"
	wishlistsvc "github.com/eshop-labs/storefront-api/internal/wishlist"
	"github.com/eshop-labs/storefront-api/pkg/auth/session"
	"github.com/eshop-labs/storefront-api/pkg/config"
	"github.com/eshop-labs/storefront-api/pkg/db"
	"github.com/eshop-labs/storefront-api/pkg/logger"
	"github.com/eshop-labs/storefront-api/pkg/redis"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	Catalog        catalog.Service
	Cart           cartsvc.Service
	Wishlist       wishlistsvc.Service
	Auth           authsvc.Service
	Metrics        prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	requestPolicy := middleware.NewOTPRateLimitPolicy(
		"request",
		cfg.OTP.RequestWindow,
		cfg.OTP.RequestIPLimit,
		cfg.OTP.RequestPhoneLimit,
	)
	verifyPolicy := middleware.NewOTPRateLimitPolicy(
		"verify",
		cfg.OTP.VerifyWindow,
		cfg.OTP.VerifyIPLimit,
		cfg.OTP.VerifyPhoneLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogList(deps.Catalog, logg))
		r.Get("/products/{productId}", controllers.CatalogProduct(deps.Catalog, logg))
		r.Get("/featured", controllers.CatalogFeatured(deps.Catalog, logg))
		r.Get("/trending", controllers.CatalogTrending(deps.Catalog, logg))
		r.Get("/categories", controllers.CatalogCategories(deps.Catalog, logg))
		r.Get("/search", controllers.CatalogSearch(deps.Catalog, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.OTPRateLimit(requestPolicy, deps.Redis, logg)).
			Post("/request-code", controllers.AuthRequestCode(deps.Auth, logg))
		r.With(middleware.OTPRateLimit(verifyPolicy, deps.Redis, logg)).
			Post("/verify-code", controllers.AuthVerifyCode(deps.Auth, logg))
		r.Post("/federated", controllers.AuthFederatedSignIn(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).
			Post("/sign-out", controllers.AuthSignOut(deps.Auth, logg))
	})

	// Fetches accept anonymous shoppers; mutations require a session.
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.With(middleware.OptionalAuth(cfg.JWT, deps.SessionChecker, logg)).
			Get("/", controllers.CartFetch(deps.Cart, logg))
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, deps.SessionChecker, logg))
			r.Post("/items", controllers.CartAdd(deps.Cart, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateQuantity(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(deps.Cart, logg))
		})
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.With(middleware.OptionalAuth(cfg.JWT, deps.SessionChecker, logg)).
			Get("/", controllers.WishlistFetch(deps.Wishlist, logg))
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.JWT, deps.SessionChecker, logg))
			r.Post("/items", controllers.WishlistAdd(deps.Wishlist, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemove(deps.Wishlist, logg))
		})
	})

	return r
}
