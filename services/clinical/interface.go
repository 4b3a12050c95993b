// File: services/clinical/interface.go
package clinical

import (
	nurseRepo "healthverse/database/repository/nurse"
	userRepo "healthverse/database/repository/user"
	vitalsRepo "healthverse/database/repository/vitals"
	"healthverse/models"
)

// VitalsInput carries one vitals measurement submitted by a nurse.
type VitalsInput struct {
	PatientID     string  `json:"patientId" binding:"required"`
	Temperature   float64 `json:"temperature"`
	HeartRate     int     `json:"heartRate"`
	BloodPressure string  `json:"bloodPressure"`
	RespRate      int     `json:"respRate"`
	OxygenSat     float64 `json:"oxygenSat"`
	Notes         string  `json:"notes"`
}

// NursePanel bundles a nurse profile with their assigned patients resolved
// to full accounts.
type NursePanel struct {
	Nurse    models.Nurse  `json:"nurse"`
	Patients []models.User `json:"patients"`
}

// ClinicalService defines nurse-facing ward operations.
type ClinicalService interface {
	LogVitals(nurseUID string, in VitalsInput) (*models.VitalsRecord, error)
	PatientVitals(patientID string) ([]models.VitalsRecord, error)
	Panel(nurseUID string) (*NursePanel, error)
	AssignPatient(nurseUID, patientID string) error
	UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error
	ListNurses() ([]models.Nurse, error)
}

// DefaultClinicalService is the production implementation of ClinicalService.
type DefaultClinicalService struct {
	Nurses nurseRepo.NurseRepository
	Vitals vitalsRepo.VitalsRepository
	Users  userRepo.UserRepository
}
