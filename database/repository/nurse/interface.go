package nurseRepo

import "healthverse/models"

// NurseRepository defines persistence operations for nurse profiles.
type NurseRepository interface {
	Create(nurse *models.Nurse) error
	GetByUID(uid string) (*models.Nurse, error)
	GetAll() ([]models.Nurse, error)
	AssignPatient(nurseUID, patientID string) error
	UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error
}
