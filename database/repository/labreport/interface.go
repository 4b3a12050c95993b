package labreportRepo

import "healthverse/models"

// LabReportRepository defines persistence operations for lab report metadata.
type LabReportRepository interface {
	Insert(report *models.LabReport) error
	GetByPatient(patientID string) ([]models.LabReport, error)
	GetByDoctor(doctorID string) ([]models.LabReport, error)
}
