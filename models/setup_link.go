package models

import "time"

// Setup link statuses.
const (
	SetupLinkActive  = "active"
	SetupLinkRevoked = "revoked"
	SetupLinkUsed    = "used"
)

// SetupLink is a one-time password-setup link issued when an admin
// provisions an account. Expires 24 hours after creation.
type SetupLink struct {
	UserID    string    `bson:"user_id" json:"userId"`
	Email     string    `bson:"email" json:"email"`
	Token     string    `bson:"token" json:"token"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
}

// Expired reports whether the link has passed its expiry at the given time.
func (l SetupLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
