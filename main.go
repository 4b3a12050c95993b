// File: healthverse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthverse/config"
	"healthverse/cron"
	"healthverse/database"
	appointmentRepoPkg "healthverse/database/repository/appointment"
	auditlogRepoPkg "healthverse/database/repository/auditlog"
	doctorRepoPkg "healthverse/database/repository/doctor"
	labreportRepoPkg "healthverse/database/repository/labreport"
	nurseRepoPkg "healthverse/database/repository/nurse"
	setuplinkRepoPkg "healthverse/database/repository/setuplink"
	userRepoPkg "healthverse/database/repository/user"
	vitalsRepoPkg "healthverse/database/repository/vitals"
	"healthverse/handlers"
	"healthverse/routes"
	"healthverse/services/appointment"
	"healthverse/services/booking"
	"healthverse/services/clinical"
	"healthverse/services/labs"
	"healthverse/services/triage"
	"healthverse/services/user"
	"healthverse/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	geminiClient, err := triage.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	defer geminiClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	nurseRepo := nurseRepoPkg.NewMongoNurseRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	vitalsRepo := vitalsRepoPkg.NewMongoVitalsRepo()
	auditRepo := auditlogRepoPkg.NewMongoAuditLogRepo()
	setupLinkRepo := setuplinkRepoPkg.NewMongoSetupLinkRepo()
	labReportRepo := labreportRepoPkg.NewMongoLabReportRepo()

	// services.
	triageService := triage.NewDefaultTriageService(geminiClient, config.AppConfig.EmergencyPhone)

	scheduler := cron.NewAppointmentScheduler()
	defer scheduler.Close()

	bookingService := &booking.DefaultBookingSessionService{
		DoctorRepo: doctorRepo,
		ApptRepo:   apptRepo,
		Cache:      utils.GetSessionCacheClient(),
		Tasks:      scheduler,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo: apptRepo,
	}

	userService := &user.DefaultUserService{
		Repo:       userRepo,
		Doctors:    doctorRepo,
		Nurses:     nurseRepo,
		SetupLinks: setupLinkRepo,
		Audit:      auditRepo,
		AuthCache:  utils.GetAuthCacheClient(),
	}

	clinicalService := &clinical.DefaultClinicalService{
		Nurses: nurseRepo,
		Vitals: vitalsRepo,
		Users:  userRepo,
	}

	labService := &labs.DefaultLabReportService{
		Reports: labReportRepo,
		Users:   userRepo,
		Storage: storageService,
	}

	// Background worker for post-slot appointment finalization.
	cron.InitAppointmentWorker(appointmentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Triage endpoints.
		TriageHandler:       handlers.TriageHandler(triageService),
		VoiceSymptomHandler: handlers.VoiceSymptom(),

		// Booking wizard endpoints.
		StartBookingHandler:   handlers.StartBookingSession(bookingService),
		SelectServiceHandler:  handlers.SelectBookingService(bookingService),
		SelectDoctorHandler:   handlers.SelectBookingDoctor(bookingService),
		SelectSlotHandler:     handlers.SelectBookingSlot(bookingService),
		BookingBackHandler:    handlers.BookingBack(bookingService),
		ConfirmBookingHandler: handlers.ConfirmBooking(bookingService),
		CancelBookingHandler:  handlers.CancelBooking(bookingService),

		// Directory endpoints.
		ListDoctorsHandler:  handlers.ListDoctors(doctorRepo),
		ListServicesHandler: handlers.ListServices(),

		// Appointment endpoints.
		MyAppointmentsHandler:     handlers.MyAppointments(appointmentService),
		DoctorAppointmentsHandler: handlers.DoctorAppointments(appointmentService),
		AllAppointmentsHandler:    handlers.AllAppointments(appointmentService),
		CheckInHandler:            handlers.CheckInAppointment(appointmentService),
		CancelAppointmentHandler:  handlers.CancelAppointment(appointmentService),

		// Account endpoints.
		LoginHandler:         handlers.Login(userService),
		LogoutHandler:        handlers.Logout(userService),
		CompleteSetupHandler: handlers.CompleteSetup(userService),
		ProfileHandler:       handlers.Profile(userService),

		// Admin endpoints.
		CreateUserHandler:      handlers.CreateUser(userService),
		ListUsersHandler:       handlers.ListUsers(userService),
		UpdateUserHandler:      handlers.UpdateUser(userService),
		DeactivateUserHandler:  handlers.DeactivateUser(userService),
		SecurityLogsHandler:    handlers.SecurityLogs(auditRepo),
		ListSetupLinksHandler:  handlers.ListSetupLinks(userService),
		RevokeSetupLinkHandler: handlers.RevokeSetupLink(userService),
		AssignPatientHandler:   handlers.AssignPatient(clinicalService),
		NurseScheduleHandler:   handlers.NurseSchedule(clinicalService),
		ListNursesHandler:      handlers.ListNurses(clinicalService),

		// Nurse endpoints.
		LogVitalsHandler:     handlers.LogVitals(clinicalService),
		PatientVitalsHandler: handlers.PatientVitals(clinicalService),
		NursePanelHandler:    handlers.NursePanel(clinicalService),
		OwnScheduleHandler:   handlers.UpdateOwnSchedule(clinicalService),

		// Lab report endpoints.
		UploadLabReportHandler: handlers.UploadLabReport(labService),
		PatientReportsHandler:  handlers.PatientReports(labService),
		DoctorReportsHandler:   handlers.DoctorReports(labService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Monitor Redis and Mongo connectivity.
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
