package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orderbuddy/orderbuddy-backend/api/controllers"
	"github.com/orderbuddy/orderbuddy-backend/api/middleware"
	"github.com/orderbuddy/orderbuddy-backend/internal/assistant"
	"github.com/orderbuddy/orderbuddy-backend/internal/auth"
	"github.com/orderbuddy/orderbuddy-backend/internal/cart"
	"github.com/orderbuddy/orderbuddy-backend/internal/dashboard"
	"github.com/orderbuddy/orderbuddy-backend/internal/orders"
	"github.com/orderbuddy/orderbuddy-backend/internal/products"
	"github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/pkg/config"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
	"github.com/orderbuddy/orderbuddy-backend/pkg/metrics"
	"github.com/orderbuddy/orderbuddy-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Users middleware.UserLoader

	AuthService      auth.Service
	ShopService      shops.Service
	ProductService   products.Service
	CartService      cart.Service
	OrderService     orders.Service
	DashboardService dashboard.Service
	AssistantService assistant.Service
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
		middleware.Metrics(deps.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health(cfg))
		r.Get("/locations", controllers.Locations())
		r.Get("/shops", controllers.ListShops(deps.ShopService, logg))
		r.Get("/shops/{shopID}/products", controllers.ListShopProducts(deps.ProductService, logg))
		r.Get("/products/search", controllers.SearchProducts(deps.ProductService, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Users, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole("shop_owner", logg))
				r.Post("/shops", controllers.CreateShop(deps.ShopService, logg))
				r.Get("/shops/my", controllers.ListMyShops(deps.ShopService, logg))
			})

			// ownership of the shop is checked in the service
			r.Post("/shops/{shopID}/products", controllers.CreateProduct(deps.ProductService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Use(middleware.RequireRole("customer", logg))
				r.Post("/", controllers.CartAdd(deps.CartService, logg))
				r.Get("/", controllers.CartFetch(deps.CartService, logg))
				r.Delete("/{itemID}", controllers.CartRemove(deps.CartService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.With(middleware.RequireRole("customer", logg)).Post("/", controllers.CreateOrder(deps.OrderService, logg))
				r.Get("/", controllers.ListOrders(deps.OrderService, logg))
				r.Patch("/{orderID}/status", controllers.UpdateOrderStatus(deps.OrderService, logg))
			})

			r.Post("/ai/assistant", controllers.AssistantChat(deps.AssistantService, logg))
			r.Get("/dashboard/stats", controllers.DashboardStats(deps.DashboardService, logg))
		})
	})

	return r
}
