package routes

import (
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/handler"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	generationHandler *handler.GenerationHandler,
	creditHandler *handler.CreditHandler,
	paymentHandler *handler.PaymentHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	adminToken string,
) {
	// Onboarding is called service-to-service before the user has a session
	router.POST("/user/register", userHandler.Register)

	// Webhook is authenticated by signature, not by user session
	router.POST("/payments/webhook", paymentHandler.HandleWebhook)

	// User-facing routes behind the auth gateway
	authed := router.Group("/", middleware.Auth())
	{
		videoRoutes := authed.Group("/video")
		{
			videoRoutes.POST("/generate", generationHandler.Generate)
			videoRoutes.GET("/status/:id", generationHandler.GetStatus)
			videoRoutes.GET("/wait/:id", generationHandler.Wait)
			videoRoutes.GET("/list", generationHandler.List)
		}

		authed.POST("/checkin", creditHandler.CheckIn)

		creditRoutes := authed.Group("/credits")
		{
			creditRoutes.GET("/balance", creditHandler.GetBalance)
			creditRoutes.GET("/history", creditHandler.GetHistory)
		}

		paymentRoutes := authed.Group("/payments")
		{
			paymentRoutes.POST("/checkout", paymentHandler.CreateCheckout)
			paymentRoutes.GET("/packages", paymentHandler.ListPackages)
		}
	}

	// Support tooling routes
	adminRoutes := router.Group("/admin", middleware.AdminAuth(adminToken))
	{
		adminRoutes.POST("/credits/award", adminHandler.AwardCredits)
		adminRoutes.POST("/credits/deduct", adminHandler.DeductCredits)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
