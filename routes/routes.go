package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.ListServices)
	r.GET("/available", hb.GetAvailable)
}

// RegisterUserRoutes registers user endpoints. Profile upsert is public by
// design: it is how a caller obtains their first token. The admin promotion
// requires both gates, authentication strictly before the role check.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware()
	admin := middleware.AdminAuthMiddleware(hb.UserRepo)

	r.GET("/user", auth, hb.GetAllUsers)
	r.GET("/admin/:email", auth, hb.CheckAdmin)
	r.PUT("/user/admin/:email", auth, admin, hb.PromoteAdmin)
	r.PUT("/user/:email", hb.UpsertUser)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware()

	r.GET("/booking", auth, hb.GetBookings)
	r.POST("/booking", hb.CreateBooking)
}

// RegisterDoctorRoutes registers doctor endpoints (admin only).
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware()
	admin := middleware.AdminAuthMiddleware(hb.UserRepo)

	r.POST("/doctor", auth, admin, hb.AddDoctor)
}

// RegisterLivenessRoute registers the root liveness endpoint.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal is running")
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

	RegisterLivenessRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
