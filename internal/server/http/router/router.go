package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/guitarshop/checkout/internal/server/http/handlers"
	"github.com/guitarshop/checkout/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CheckoutFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	checkoutHandler := handlers.NewCheckoutHandler(facade)
	healthHandler := handlers.NewHealthHandler()

	engine.POST("/checkout", checkoutHandler.Create)
	engine.GET("/checkout/:id", checkoutHandler.Get)
	engine.GET("/checkout/customer/:customerId", checkoutHandler.ListByCustomer)
	engine.GET("/health", healthHandler.Status)

	return engine
}
