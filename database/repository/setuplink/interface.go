package setuplinkRepo

import "healthverse/models"

// SetupLinkRepository defines persistence operations for account setup links.
type SetupLinkRepository interface {
	Create(link *models.SetupLink) error
	GetByUserID(userID string) (*models.SetupLink, error)
	GetAll() ([]models.SetupLink, error)
	SetStatus(userID, status string) error
}
