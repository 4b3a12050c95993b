package appointmentRepo

import (
	"errors"

	"healthverse/models"
)

// ErrSlotTaken is returned by Create when another active appointment
// already holds the same doctor/date/time slot.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByPatient(patientID string) ([]models.Appointment, error)
	GetByDoctor(doctorID string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)
	UpdateStatus(id, status string) error
}
