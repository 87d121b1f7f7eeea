package router

import (
	"net/http"

	"github.com/Manzzzx/barasakti/config"
	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/handler"
	"github.com/Manzzzx/barasakti/internal/middleware"
	"github.com/Manzzzx/barasakti/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

type Router struct {
	contactHandler *handler.ContactHandler
	orderHandler   *handler.OrderHandler
	healthHandler  *handler.HealthHandler

	contactLimiter ratelimit.Limiter
	orderLimiter   ratelimit.Limiter

	Config *config.Config
}

func NewRouter(
	contact *handler.ContactHandler,
	order *handler.OrderHandler,
	health *handler.HealthHandler,
	contactLimiter ratelimit.Limiter,
	orderLimiter ratelimit.Limiter,
	cfg *config.Config,
) *Router {
	return &Router{
		contactHandler: contact,
		orderHandler:   order,
		healthHandler:  health,
		contactLimiter: contactLimiter,
		orderLimiter:   orderLimiter,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware(constants.MsgContactInternalError))
	router.Use(middleware.CORS())

	// Reject wrong verbs on known paths with an explicit Allow header
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		switch c.Request.URL.Path {
		case "/api/contact":
			c.Header(constants.HeaderAllow, "POST")
		case "/api/orders":
			c.Header(constants.HeaderAllow, "GET, POST")
		}
		c.JSON(http.StatusMethodNotAllowed, constants.BuildErrorResponse(constants.MsgMethodNotAllowed, nil))
	})

	api := router.Group("/api")
	{
		api.POST("/contact",
			middleware.RateLimit(r.contactLimiter, constants.MsgContactRateLimited),
			r.contactHandler.Submit,
		)

		api.POST("/orders",
			middleware.RecoveryMiddleware(constants.MsgOrderInternalError),
			middleware.RateLimit(r.orderLimiter, constants.MsgOrderRateLimited),
			r.orderHandler.Submit,
		)
		api.GET("/orders", r.orderHandler.Status)

		api.GET("/health", r.healthHandler.HealthCheck)
	}

	return router
}
