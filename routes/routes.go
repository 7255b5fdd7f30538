package routes

import (
	"time"

	"eventoz/handlers"
	"eventoz/middleware"
	"eventoz/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", handlers.Logout)
	}
}

// RegisterServiceRoutes registers the catalog and provider listing endpoints.
func RegisterServiceRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		// Public catalog and availability surface.
		api.GET("", handlers.ListServices)
		api.GET("/:id", handlers.GetService)
		api.GET("/:id/availability", handlers.GetMonthAvailability)
		api.GET("/:id/start-times", handlers.GetStartTimes)
		api.GET("/:id/end-times", handlers.GetEndTimes)

		// Provider-side listing management.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleProvider))
		protected.POST("", handlers.CreateService)
		protected.GET("/mine", handlers.ListMyServices)
		protected.POST("/:id/blocked-dates", handlers.BlockDate)
		protected.DELETE("/:id/blocked-dates", handlers.UnblockDate)
		protected.GET("/:id/reservations", handlers.ListServiceReservations)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/session", handlers.StartBookingSession)
		bookingGroup.PUT("/session/:sessionID", handlers.UpdateBookingSession)
		bookingGroup.POST("/session/:sessionID/confirm", handlers.ConfirmBookingSession)
		bookingGroup.DELETE("/session/:sessionID", handlers.CancelBookingSession)

		bookingGroup.POST("/reservations", handlers.RequestBooking)
		bookingGroup.GET("/reservations/:id", handlers.GetReservation)
		bookingGroup.POST("/reservations/:id/confirm", handlers.ConfirmReservation)
		bookingGroup.POST("/reservations/:id/cancel", handlers.CancelReservation)
		bookingGroup.GET("/events/:id/reservations", handlers.ListEventReservations)
	}
}

// RegisterAdminRoutes sets up endpoints for listing moderation.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/services/pending", handlers.ListPendingServices)
		adminGroup.POST("/services/:id/approve", handlers.ApproveService)
		adminGroup.POST("/services/:id/reject", handlers.RejectService)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterServiceRoutes(r)
	RegisterBookingRoutes(r)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}
