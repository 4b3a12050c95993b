package user

import (
	auditlogRepo "healthverse/database/repository/auditlog"
	doctorRepo "healthverse/database/repository/doctor"
	nurseRepo "healthverse/database/repository/nurse"
	setuplinkRepo "healthverse/database/repository/setuplink"
	userRepo "healthverse/database/repository/user"
	"healthverse/models"

	"github.com/go-redis/redis/v8"
)

// CreateUserInput is what an admin submits when provisioning an account.
type CreateUserInput struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// CreateUserResult is returned after provisioning: the account plus the
// one-time setup link the admin hands to the new user.
type CreateUserResult struct {
	User      models.User      `json:"user"`
	SetupLink models.SetupLink `json:"setupLink"`
}

// AuthResponse contains the signed-in user's ID, token, and display details.
type AuthResponse struct {
	UID         string `json:"uid"`
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// UserService manages platform accounts, role profiles, and setup links.
type UserService interface {
	CreateUser(input CreateUserInput) (*CreateUserResult, error)
	CompleteSetup(token, password string) (*models.User, error)
	Authenticate(email, password, ip string) (*AuthResponse, error)
	RevokeToken(tokenString, ip string) error
	GetUserByUID(uid string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(uid, fullName string) (*models.User, error)
	DeactivateUser(uid string) error
	ListSetupLinks() ([]models.SetupLink, error)
	RevokeSetupLink(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo       userRepo.UserRepository
	Doctors    doctorRepo.DoctorRepository
	Nurses     nurseRepo.NurseRepository
	SetupLinks setuplinkRepo.SetupLinkRepository
	Audit      auditlogRepo.AuditLogRepository
	AuthCache  *redis.Client
}
