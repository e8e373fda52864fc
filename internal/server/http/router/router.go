package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/metrics"
	pkgAuth "github.com/rushrr/courier/internal/pkg/auth"
	"github.com/rushrr/courier/internal/server/http/handlers"
	"github.com/rushrr/courier/internal/server/http/middleware"
)

// Params lists the dependencies of the HTTP router.
type Params struct {
	fx.In

	Facade   handlers.CourierFacade
	Verifier pkgAuth.KeyVerifier
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	healthHandler := handlers.NewHealthHandler(p.Facade)
	sessionHandler := handlers.NewSessionHandler(p.Facade)
	setupHandler := handlers.NewSetupHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	detailsHandler := handlers.NewDetailsHandler(p.Facade)

	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Health)
	api.POST("/health", healthHandler.Ping)
	api.GET("/cities", healthHandler.Cities)
	api.GET("/test-order", detailsHandler.TestOrderUsage)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminKey(p.Verifier))
	admin.POST("/sessions", sessionHandler.Provision)
	admin.DELETE("/sessions/:shop", sessionHandler.Remove)

	shop := api.Group("")
	shop.Use(middleware.ShopAuth(p.Facade))
	shop.POST("/save-token", setupHandler.SaveToken)
	shop.GET("/setup/status", setupHandler.Status)
	shop.POST("/setup/connect", setupHandler.Connect)
	shop.DELETE("/setup/token", setupHandler.Disconnect)

	shop.POST("/process-orders", orderHandler.Process)
	shop.POST("/create-order", orderHandler.Create)
	shop.GET("/orders", orderHandler.List)
	shop.POST("/orders/book", orderHandler.Book)
	shop.PUT("/orders/:id", orderHandler.Update)
	shop.GET("/orders/:id/airway-bill", orderHandler.AirwayBill)

	shop.POST("/order-details", detailsHandler.OrderDetails)
	shop.POST("/bulk-order-details", detailsHandler.BulkDetails)
	shop.POST("/test-order", detailsHandler.TestOrder)

	return engine
}
