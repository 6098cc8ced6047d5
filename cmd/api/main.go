package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/orderbuddy/orderbuddy-backend/api/routes"
	"github.com/orderbuddy/orderbuddy-backend/internal/assistant"
	"github.com/orderbuddy/orderbuddy-backend/internal/auth"
	"github.com/orderbuddy/orderbuddy-backend/internal/cart"
	"github.com/orderbuddy/orderbuddy-backend/internal/dashboard"
	"github.com/orderbuddy/orderbuddy-backend/internal/orders"
	"github.com/orderbuddy/orderbuddy-backend/internal/products"
	"github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/internal/users"
	"github.com/orderbuddy/orderbuddy-backend/pkg/config"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
	"github.com/orderbuddy/orderbuddy-backend/pkg/metrics"
	"github.com/orderbuddy/orderbuddy-backend/pkg/migrate"
	"github.com/orderbuddy/orderbuddy-backend/pkg/openai"
	"github.com/orderbuddy/orderbuddy-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	usersRepo := users.NewRepository(dbClient.DB())
	shopsRepo := shops.NewRepository(dbClient.DB())
	productsRepo := products.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       usersRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	shopService, err := shops.NewService(shopsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create shop service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(productsRepo, shopsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartRepo, productsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(ordersRepo, cartRepo, shopsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(shopsRepo, productsRepo, ordersRepo, cartRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	var assistantService assistant.Service
	if cfg.OpenAI.APIKey != "" {
		llm, err := openai.NewClient(
			cfg.OpenAI.APIKey,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model),
			openai.WithTimeout(cfg.OpenAI.Timeout),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create openai client", err)
			os.Exit(1)
		}
		assistantService, err = assistant.NewService(llm, redisClient, cfg.Assistant, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create assistant service", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "openai api key not set, assistant endpoint disabled")
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			Redis:            redisClient,
			HTTPMetrics:      httpMetrics,
			Gatherer:         registry,
			Users:            usersRepo,
			AuthService:      authService,
			ShopService:      shopService,
			ProductService:   productService,
			CartService:      cartService,
			OrderService:     orderService,
			DashboardService: dashboardService,
			AssistantService: assistantService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
