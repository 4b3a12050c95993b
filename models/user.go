// models/user.go
package models

import "time"

// Roles a platform account can hold.
const (
	RolePatient      = "patient"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
	RoleAdmin        = "admin"
)

// Account statuses.
const (
	UserStatusPending  = "Pending"
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RoleDoctor, RoleNurse, RoleReceptionist, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform account.
type User struct {
	UID          string     `bson:"uid" json:"uid"`
	Email        string     `bson:"email" json:"email"`
	DisplayName  string     `bson:"display_name" json:"displayName"`
	Role         string     `bson:"role" json:"role"`
	Status       string     `bson:"status" json:"status"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
}
