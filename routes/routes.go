package routes

import (
	"net/http"
	"time"

	"purrfect/handlers"
	"purrfect/middleware"
	"purrfect/models"
	"purrfect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
	}
}

// RegisterPetRoutes registers pet profile and health hub endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreatePetHandler)
		api.GET("", hb.ListPetsHandler)
		api.GET("/:id", hb.GetPetHandler)
		api.PUT("/:id", hb.UpdatePetHandler)
		api.DELETE("/:id", hb.DeletePetHandler)
		api.GET("/:id/health", hb.GetHealthSummaryHandler)
		api.POST("/:id/health", hb.AddHealthEntryHandler)
	}
}

// RegisterBookingRoutes registers slot and appointment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/slots", hb.ListSlotsHandler)
		api.POST("/slots", middleware.RequireRole(models.RoleVet), hb.SetupSlotsHandler)
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListMyAppointmentsHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints. The gateway callback is
// public: the gateway authenticates nothing and retries on non-200.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/mpesa/callback", hb.MpesaCallbackHandler)

	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/initiate", hb.InitiatePaymentHandler)
		api.GET("", hb.ListPaymentsHandler)
		api.GET("/:id", hb.GetPaymentHandler)
		api.GET("/status/:checkoutRequestID", hb.QueryPaymentStatusHandler)
	}
}

// RegisterLostPetRoutes registers the lost-pet board. Listing is public;
// filing and closing reports require auth.
func RegisterLostPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lost-pets")
	{
		api.GET("", hb.ListLostPetsHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.ReportLostPetHandler)
		api.PUT("/:id/found", hb.MarkLostPetFoundHandler)
	}
}

// RegisterAdoptionRoutes registers the adoption marketplace. Browsing is
// public; listing and applying require auth.
func RegisterAdoptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/adoptions")
	{
		api.GET("", hb.BrowseListingsHandler)
		api.GET("/:id", hb.GetListingHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateListingHandler)
		api.POST("/:id/apply", hb.ApplyHandler)
		api.GET("/applications/mine", hb.ListMyApplicationsHandler)
		api.GET("/applications/received", hb.ListReceivedApplicationsHandler)
	}
}

// RegisterReminderRoutes registers reminder endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.ListRemindersHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterVetRoutes registers the public vet directory.
func RegisterVetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/vets", hb.ListVetsHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		api.GET("/analytics", hb.AnalyticsSummaryHandler)
		api.GET("/users", hb.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Purrfect",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterLostPetRoutes(r, hb)
	RegisterAdoptionRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterVetRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
