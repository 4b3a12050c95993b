package booking

import (
	appointmentRepo "healthverse/database/repository/appointment"
	doctorRepo "healthverse/database/repository/doctor"
	"healthverse/models"

	"github.com/go-redis/redis/v8"
)

// TaskScheduler schedules the post-slot finalize task for a persisted
// appointment. Implementations live outside this package (asynq).
type TaskScheduler interface {
	ScheduleFinalize(appt *models.Appointment) error
}

// BookingSessionService drives the appointment wizard: a linear sequence of
// selection steps accumulated in a cached draft, persisted only on Confirm.
type BookingSessionService interface {
	Initiate(sess models.SessionContext, preselectedService string) (*models.BookingResponse, error)
	SelectService(sessionID, serviceID string) (*models.BookingResponse, error)
	SelectDoctor(sessionID, doctorID string) (*models.BookingResponse, error)
	SelectSlot(sessionID, date, timeSlot string) (*models.BookingResponse, error)
	Back(sessionID string) (*models.BookingResponse, error)
	Confirm(sessionID string) (*models.BookingResponse, error)
	Cancel(sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	DoctorRepo doctorRepo.DoctorRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	Cache      *redis.Client
	Tasks      TaskScheduler // optional; nil disables finalize scheduling
}
