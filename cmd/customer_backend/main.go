package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/andinabank/ledger-service/internal/core/services"
	"github.com/andinabank/ledger-service/internal/events/kafka"
	"github.com/andinabank/ledger-service/internal/handlers"
	"github.com/andinabank/ledger-service/internal/middleware"
	"github.com/andinabank/ledger-service/internal/platform/config"
	"github.com/andinabank/ledger-service/internal/repositories/database/pgsql"
	"github.com/andinabank/ledger-service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Customer Registry API
// @version 1.0
// @description Customer registry publishing lifecycle events for the ledger.

// @host localhost:8081
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(logger, cfg.DatabaseURL, "file://migrations/customer"); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	producer := kafka.NewCustomerEventProducer(cfg.KafkaBrokers)
	defer func() {
		if cerr := producer.Close(); cerr != nil {
			logger.Error("Error closing event producer", slog.String("error", cerr.Error()))
		}
	}()

	repos := pgsql.NewCustomerRepositoryProvider(dbPool)
	serviceContainer := services.NewCustomerServiceContainer(repos, producer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if rate, err := limiter.NewRateFromFormatted(cfg.RateLimit); err == nil {
		r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	} else {
		logger.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterCustomerRoutes(r, cfg, serviceContainer)

	logger.Info("Customer backend starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
