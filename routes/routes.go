// routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/handlers"
	"github.com/fadhlanhapp/splitbill-backend/middleware"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

const rateLimitMessage = "Too many requests, please try again later"

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) error {
	if err := handlers.InitHandlers(); err != nil {
		return err
	}

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		utils.HandleError(c, &utils.AppError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		utils.HandleError(c, utils.NewNotFoundError("Not found"))
	})

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	writeLimiter := middleware.NewRateLimiter(60, time.Minute)
	requireUser := middleware.RequireUser(handlers.Auth())

	api := router.Group("/api", middleware.BodyLimit(utils.MaxBodyBytes))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.LimitByIP(loginLimiter, rateLimitMessage), handlers.Login)
			auth.POST("/register", middleware.LimitByIP(loginLimiter, rateLimitMessage), handlers.Register)
			auth.POST("/refresh", middleware.LimitByIP(loginLimiter, rateLimitMessage), handlers.Refresh)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", requireUser, handlers.Me)
		}

		api.GET("/users", requireUser, middleware.RequireAdmin(), handlers.ListUsers)

		bills := api.Group("/split-bills", requireUser)
		{
			bills.GET("", handlers.ListSplitBills)
			bills.POST("", middleware.LimitByUser(writeLimiter, rateLimitMessage), handlers.CreateSplitBill)
			bills.GET("/:id", handlers.GetSplitBill)
			bills.GET("/:id/export", handlers.ExportSplitBill)
		}

		participants := api.Group("/participants", requireUser)
		{
			participants.GET("", handlers.ListParticipants)
			participants.POST("", middleware.LimitByUser(writeLimiter, rateLimitMessage), handlers.CreateParticipant)
			participants.DELETE("/:id", handlers.DeleteParticipant)
		}

		api.GET("/wallets", handlers.ListWallets)
		api.POST("/wallets", requireUser, middleware.RequireAdmin(),
			middleware.LimitByUser(writeLimiter, rateLimitMessage), handlers.CreateWallet)

		api.GET("/banners", handlers.ListBanners)
		api.POST("/banners", requireUser, middleware.RequireAdmin(),
			middleware.LimitByUser(writeLimiter, rateLimitMessage), handlers.UpsertBanners)
		api.DELETE("/banners", requireUser, middleware.RequireAdmin(), handlers.DeleteBanner)

		api.POST("/reviews", middleware.LimitByIP(writeLimiter, rateLimitMessage), handlers.CreateReview)
		api.GET("/reviews", requireUser, middleware.RequireAdmin(), handlers.ListReviews)
	}

	// The scan endpoint carries base64 images, so it gets its own body cap.
	router.POST("/api/scan", middleware.BodyLimit(utils.MaxScanBodyBytes),
		requireUser, middleware.LimitByUser(writeLimiter, rateLimitMessage), handlers.ScanBill)

	return nil
}
