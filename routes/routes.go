package routes

import (
	"marketplace-api/controllers"
	"marketplace-api/middleware"
	"marketplace-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// Payment-proof workflow keeps its historical top-level paths; the
	// status poller and the admin page are wired against these exact routes.
	router.POST("/submit_proof", middleware.OptionalAuthMiddleware(), controllers.SubmitProof)
	router.GET("/check_status", controllers.CheckStatus)

	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/adminresponse", controllers.GetProofRequests)
		admin.POST("/confirm_request/:reference_type", controllers.ConfirmRequest)
		admin.POST("/reject_request/:reference_type", controllers.RejectRequest)
		admin.GET("/proof_history/:reference_type", controllers.GetProofHistory)
	}

	router.POST("/proceed_purchase/:item_id", middleware.AuthMiddleware(), controllers.ProceedPurchase)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Item catalog browsing
			public.GET("/items", controllers.GetItems)
			public.GET("/items/:id", controllers.GetItem)
			public.GET("/items/category/:category", controllers.GetItemsByCategory)
			public.GET("/search", controllers.SearchItems)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Marketplace API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/profile", controllers.UpdateProfile)
			protected.PUT("/change-password", controllers.ChangePassword)
			protected.POST("/profile/picture", controllers.UpdateProfilePicture)

			// Listings
			protected.GET("/my-items", controllers.GetMyItems)
			protected.POST("/items", controllers.CreateItem)
			protected.PUT("/items/:id", controllers.UpdateItem)
			protected.DELETE("/items/:id", controllers.DeleteItem)

			// Saved items
			protected.POST("/items/:id/save", controllers.SaveItem)
			protected.DELETE("/items/:id/save", controllers.RemoveSavedItem)
			protected.GET("/saved-items", controllers.GetSavedItems)
		}
	}
}
