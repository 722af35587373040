package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mkholodov/storefront/internal/server/http/handlers"
	"github.com/mkholodov/storefront/internal/server/http/middleware"
)

// Facade bundles the handler operations with identity resolution for the
// authenticated route group.
type Facade interface {
	handlers.StorefrontFacade
	middleware.IdentityResolver
}

// Setup configures gin router with handlers and middleware.
func Setup(facade Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	addressHandler := handlers.NewAddressHandler(facade, logger)

	engine.POST("/auth/register", authHandler.Register)
	engine.POST("/auth/login", authHandler.Login)

	authorized := engine.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.POST("/orders", orderHandler.Create)
	authorized.GET("/orders", orderHandler.List)
	authorized.GET("/orders/:id", orderHandler.Get)
	authorized.PATCH("/orders/:id", orderHandler.Update)
	authorized.POST("/addresses", addressHandler.Add)
	authorized.GET("/addresses", addressHandler.List)
	authorized.PUT("/addresses", addressHandler.Update)
	authorized.DELETE("/addresses", addressHandler.Delete)

	return engine
}
