package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the client-facing booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/sessions", hb.SessionTiersHandler)
		api.GET("/slots", hb.CandidateSlotsHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
	}
}

// RegisterAdminRoutes registers the operator endpoints. Everything except
// login sits behind the admin session middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", hb.AdminLoginHandler)

		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("/logout", hb.AdminLogoutHandler)

		admin.POST("/ranges", hb.DeclareRangesHandler)
		admin.POST("/ranges/chat", hb.DeclareFromChatHandler)
		admin.GET("/ranges", hb.ListRangesHandler)
		admin.PUT("/ranges/block", hb.ReplaceBlockHandler)
		admin.DELETE("/ranges/:id", hb.DeleteRangeHandler)
		admin.DELETE("/ranges", hb.ResetRangesHandler)

		admin.GET("/appointments", hb.ListAppointmentsHandler)
		admin.DELETE("/appointments/:id", hb.DeleteAppointmentHandler)
		admin.DELETE("/appointments", hb.ResetAppointmentsHandler)

		admin.POST("/notify/test", hb.SendTestNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
