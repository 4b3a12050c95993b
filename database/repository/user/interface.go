package userRepo

import "healthverse/models"

// UserRepository defines persistence operations for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByUID(uid string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	SetStatus(uid, status string) error
	RecordLogin(uid string) error
}
