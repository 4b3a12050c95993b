package appointment

import (
	appointmentRepo "healthverse/database/repository/appointment"
	"healthverse/models"
)

// AppointmentService exposes read and lifecycle operations over persisted
// appointment records. Creation happens only through the booking wizard.
type AppointmentService interface {
	ListForPatient(patientID string) ([]models.Appointment, error)
	ListForDoctor(doctorID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	CheckIn(appointmentID string) error
	Cancel(appointmentID, requesterID, requesterRole string) error
	Finalize(appointmentID string) error
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
}
