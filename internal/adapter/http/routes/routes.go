package routes

import (
	"log"

	"estimaciones_obra/internal/adapter/http/handlers"
	"estimaciones_obra/internal/adapter/http/middleware"
	"estimaciones_obra/internal/infrastructure/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const ServiceName = "estimaciones-obra"

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Projects    *handlers.ProjectHandler
	Estimations *handlers.EstimationHandler
	Payments    *handlers.BillingPaymentHandler
}

// Options controls the router middlewares.
type Options struct {
	// JWTSecret enables Bearer token identity. Empty means X-User-* headers are trusted.
	JWTSecret string
	Tracing   bool
	Swagger   bool
}

// NewRouter builds the gin engine with every public route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.Identity(opts.JWTSecret))
	addProjectRoutes(authed, h.Projects)
	addEstimationRoutes(authed, h.Estimations)
	addBillingRoutes(authed, h.Payments)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	if opts.Tracing {
		router.Use(tracing.Middleware(ServiceName))
	}
}
