// File: services/user/service.go
package user

import (
	"fmt"
	"strings"
	"time"

	"healthverse/models"

	"github.com/google/uuid"
)

// setupLinkTTL is how long a password-setup link stays valid.
const setupLinkTTL = 24 * time.Hour

// CreateUser provisions a new account in Pending status, creates the
// role-specific profile document where the role requires one, and issues a
// one-time setup link.
func (s *DefaultUserService) CreateUser(input CreateUserInput) (*CreateUserResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(fullName) < 2 {
		return nil, fmt.Errorf("full name must be at least 2 characters")
	}
	if !models.ValidRole(input.Role) {
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}

	newUser := models.User{
		UID:         uuid.New().String(),
		Email:       email,
		DisplayName: fullName,
		Role:        input.Role,
		Status:      models.UserStatusPending,
	}
	if err := s.Repo.Create(&newUser); err != nil {
		return nil, err
	}

	switch input.Role {
	case models.RoleDoctor:
		doc := models.Doctor{
			UID:         newUser.UID,
			DisplayName: fullName,
			Email:       email,
			ServiceIDs:  []string{},
		}
		if err := s.Doctors.Create(&doc); err != nil {
			return nil, fmt.Errorf("failed to create doctor profile: %w", err)
		}
	case models.RoleNurse:
		nurse := models.Nurse{
			UID:         newUser.UID,
			DisplayName: fullName,
			Email:       email,
		}
		if err := s.Nurses.Create(&nurse); err != nil {
			return nil, fmt.Errorf("failed to create nurse profile: %w", err)
		}
	}

	now := time.Now()
	link := models.SetupLink{
		UserID:    newUser.UID,
		Email:     email,
		Token:     uuid.New().String(),
		Status:    models.SetupLinkActive,
		CreatedAt: now,
		ExpiresAt: now.Add(setupLinkTTL),
	}
	if err := s.SetupLinks.Create(&link); err != nil {
		return nil, err
	}

	return &CreateUserResult{User: newUser, SetupLink: link}, nil
}

// GetUserByUID retrieves one account.
func (s *DefaultUserService) GetUserByUID(uid string) (*models.User, error) {
	return s.Repo.GetByUID(uid)
}

// GetAllUsers returns every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateUser changes the display name of an account.
func (s *DefaultUserService) UpdateUser(uid, fullName string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 2 {
		return nil, fmt.Errorf("full name must be at least 2 characters")
	}

	existing, err := s.Repo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	existing.DisplayName = fullName
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeactivateUser disables sign-in for an account.
func (s *DefaultUserService) DeactivateUser(uid string) error {
	return s.Repo.SetStatus(uid, models.UserStatusInactive)
}

// ListSetupLinks returns every issued setup link.
func (s *DefaultUserService) ListSetupLinks() ([]models.SetupLink, error) {
	return s.SetupLinks.GetAll()
}

// RevokeSetupLink invalidates a user's setup link.
func (s *DefaultUserService) RevokeSetupLink(userID string) error {
	return s.SetupLinks.SetStatus(userID, models.SetupLinkRevoked)
}
