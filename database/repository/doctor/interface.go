package doctorRepo

import "healthverse/models"

// DoctorRepository defines persistence operations for doctor profiles.
type DoctorRepository interface {
	Create(doc *models.Doctor) error
	GetByUID(uid string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
	GetByService(serviceID string) ([]models.Doctor, error)
	Update(doc *models.Doctor) error
}
