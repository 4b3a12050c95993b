package vitalsRepo

import "healthverse/models"

// VitalsRepository defines persistence operations for the vitals log.
type VitalsRepository interface {
	Insert(record *models.VitalsRecord) error
	GetByPatient(patientID string) ([]models.VitalsRecord, error)
}
