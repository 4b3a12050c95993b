// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"healthverse/handlers"
	"healthverse/middleware"
	"healthverse/models"
	"healthverse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in and account setup endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/setup", hb.CompleteSetupHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.ProfileHandler)
	}
}

// RegisterTriageRoutes registers the symptom advisor endpoints.
func RegisterTriageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/triage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.TriageHandler)
		api.POST("/voice", hb.VoiceSymptomHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.StartBookingHandler)
		bookingGroup.PUT("/session/:sessionID/service", hb.SelectServiceHandler)
		bookingGroup.PUT("/session/:sessionID/doctor", hb.SelectDoctorHandler)
		bookingGroup.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
		bookingGroup.POST("/session/:sessionID/back", hb.BookingBackHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelBookingHandler)
	}
}

// RegisterDirectoryRoutes registers the public doctor and service directory.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/doctors", hb.ListDoctorsHandler)
	r.GET("/api/services", hb.ListServicesHandler)
}

// RegisterAppointmentRoutes registers appointment listing and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/mine", hb.MyAppointmentsHandler)
		api.GET("/schedule", middleware.RequireRole(models.RoleDoctor), hb.DoctorAppointmentsHandler)
		api.GET("", middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist), hb.AllAppointmentsHandler)
		api.POST("/:id/checkin", middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist), hb.CheckInHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterNurseRoutes registers ward operations for nurses.
func RegisterNurseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nurse")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(models.RoleNurse, models.RoleAdmin))
		api.POST("/vitals", hb.LogVitalsHandler)
		api.GET("/vitals/:patientID", hb.PatientVitalsHandler)
		api.GET("/panel", hb.NursePanelHandler)
		api.PUT("/schedule", hb.OwnScheduleHandler)
	}
}

// RegisterLabRoutes registers lab report endpoints.
func RegisterLabRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/labs")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/reports", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), hb.UploadLabReportHandler)
		api.GET("/reports/mine", hb.PatientReportsHandler)
		api.GET("/reports/ordered", middleware.RequireRole(models.RoleDoctor), hb.DoctorReportsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.POST("/users", hb.CreateUserHandler)
		adminGroup.GET("/users", hb.ListUsersHandler)
		adminGroup.PATCH("/users/:uid", hb.UpdateUserHandler)
		adminGroup.DELETE("/users/:uid", hb.DeactivateUserHandler)
		adminGroup.GET("/security-logs", hb.SecurityLogsHandler)
		adminGroup.GET("/setup-links", hb.ListSetupLinksHandler)
		adminGroup.DELETE("/setup-links/:uid", hb.RevokeSetupLinkHandler)
		adminGroup.GET("/nurses", hb.ListNursesHandler)
		adminGroup.POST("/nurses/:uid/patients", hb.AssignPatientHandler)
		adminGroup.PUT("/nurses/:uid/schedule", hb.NurseScheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the
// latest dependency check results.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm HealthVerse",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTriageRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterNurseRoutes(r, hb)
	RegisterLabRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
