package handlers

import (
	"github.com/andinabank/ledger-service/cmd/docs"
	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterLedgerRoutes sets up all routes of the ledger backend, injecting
// dependencies through service interfaces.
func RegisterLedgerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.LedgerServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	v1 := r.Group("/api/v1")
	RegisterAccountRoutes(v1, services.Account, services.Movement)
	registerMovementRoutes(v1, services.Movement)
	registerStatementRoutes(v1, services.Statement)

	setupSwaggerRoutes(r, cfg)
}

// RegisterCustomerRoutes sets up all routes of the customer registry backend.
func RegisterCustomerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.CustomerServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	v1 := r.Group("/api/v1")
	registerCustomerRoutes(v1, services.Customer)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
