// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "healthverse/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Triage endpoints
	TriageHandler       gin.HandlerFunc
	VoiceSymptomHandler gin.HandlerFunc

	// Booking wizard endpoints
	StartBookingHandler   gin.HandlerFunc
	SelectServiceHandler  gin.HandlerFunc
	SelectDoctorHandler   gin.HandlerFunc
	SelectSlotHandler     gin.HandlerFunc
	BookingBackHandler    gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc

	// Directory endpoints
	ListDoctorsHandler  gin.HandlerFunc
	ListServicesHandler gin.HandlerFunc

	// Appointment endpoints
	MyAppointmentsHandler     gin.HandlerFunc
	DoctorAppointmentsHandler gin.HandlerFunc
	AllAppointmentsHandler    gin.HandlerFunc
	CheckInHandler            gin.HandlerFunc
	CancelAppointmentHandler  gin.HandlerFunc

	// Account endpoints
	LoginHandler         gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc
	CompleteSetupHandler gin.HandlerFunc
	ProfileHandler       gin.HandlerFunc

	// Admin endpoints
	CreateUserHandler      gin.HandlerFunc
	ListUsersHandler       gin.HandlerFunc
	UpdateUserHandler      gin.HandlerFunc
	DeactivateUserHandler  gin.HandlerFunc
	SecurityLogsHandler    gin.HandlerFunc
	ListSetupLinksHandler  gin.HandlerFunc
	RevokeSetupLinkHandler gin.HandlerFunc
	AssignPatientHandler   gin.HandlerFunc
	NurseScheduleHandler   gin.HandlerFunc
	ListNursesHandler      gin.HandlerFunc

	// Nurse endpoints
	LogVitalsHandler     gin.HandlerFunc
	PatientVitalsHandler gin.HandlerFunc
	NursePanelHandler    gin.HandlerFunc
	OwnScheduleHandler   gin.HandlerFunc

	// Lab report endpoints
	UploadLabReportHandler gin.HandlerFunc
	PatientReportsHandler  gin.HandlerFunc
	DoctorReportsHandler   gin.HandlerFunc
}
