package routes

import (
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/handler"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	User    *handler.UserHandler
	Payment *handler.PaymentHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, users usecase.UserUseCase, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	api.GET("/plans", h.Payment.Plans)

	userRoutes := api.Group("/user")
	{
		userRoutes.POST("/register", h.User.Register)
		userRoutes.POST("/login", h.User.Login)

		authed := userRoutes.Group("", middleware.Auth(users, logger))
		authed.GET("/credits", h.User.Credits)
		authed.POST("/credits", h.User.Credits)
		authed.POST("/pay-razor", h.Payment.CreateOrder)
		authed.POST("/verify-razor", h.Payment.VerifyPayment)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}

// NewRouter builds a gin engine with middlewares and routes wired
func NewRouter(h Handlers, users usecase.UserUseCase, logger coreport.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, allowedOrigins)
	SetupRoutes(router, h, users, logger)
	return router
}
