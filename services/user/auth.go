// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"time"

	"healthverse/models"
	"healthverse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an issued JWT.
const tokenTTL = 72 * time.Hour

// CompleteSetup consumes a setup link: the user sets their first password
// and the account moves from Pending to Active.
func (s *DefaultUserService) CompleteSetup(token, password string) (*models.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	links, err := s.SetupLinks.GetAll()
	if err != nil {
		return nil, err
	}
	var link *models.SetupLink
	for i := range links {
		if links[i].Token == token {
			link = &links[i]
			break
		}
	}
	if link == nil || link.Status != models.SetupLinkActive {
		return nil, fmt.Errorf("setup link is invalid or has been revoked")
	}
	if link.Expired(time.Now()) {
		return nil, fmt.Errorf("setup link has expired")
	}

	account, err := s.Repo.GetByUID(link.UserID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hash)
	account.Status = models.UserStatusActive
	if err := s.Repo.Update(account); err != nil {
		return nil, err
	}
	if err := s.SetupLinks.SetStatus(link.UserID, models.SetupLinkUsed); err != nil {
		utils.GetLogger().Warn("failed to mark setup link used",
			zap.String("userId", link.UserID), zap.Error(err))
	}
	return account, nil
}

// Authenticate verifies credentials and issues a JWT. Sign-in attempts are
// recorded in the security log.
func (s *DefaultUserService) Authenticate(email, password, ip string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.logAuthEvent("login_failed", "", "", email, ip)
		return nil, fmt.Errorf("invalid email or password")
	}
	if account.Status == models.UserStatusInactive {
		s.logAuthEvent("login_blocked", account.UID, account.Role, "account inactive", ip)
		return nil, fmt.Errorf("account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.logAuthEvent("login_failed", account.UID, account.Role, email, ip)
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(account.UID, account.Email, account.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.Repo.RecordLogin(account.UID); err != nil {
		utils.GetLogger().Warn("failed to record login", zap.String("uid", account.UID), zap.Error(err))
	}
	s.logAuthEvent("login_success", account.UID, account.Role, "", ip)

	return &AuthResponse{
		UID:         account.UID,
		Token:       token,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Role:        account.Role,
	}, nil
}

// RevokeToken blacklists a still-valid token for the remainder of its
// lifetime. The auth middleware rejects revoked tokens until they expire
// on their own.
func (s *DefaultUserService) RevokeToken(tokenString, ip string) error {
	uid, role, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil {
		return fmt.Errorf("invalid token")
	}
	remaining, err := utils.TokenRemainingTTL(tokenString)
	if err != nil {
		return fmt.Errorf("invalid token")
	}
	if remaining == 0 {
		// Already expired; nothing to blacklist.
		return nil
	}

	key := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
	if err := s.AuthCache.Set(context.Background(), key, "1", remaining).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.logAuthEvent("logout", uid, role, "", ip)
	return nil
}

func (s *DefaultUserService) logAuthEvent(event, actorID, actorRole, detail, ip string) {
	if s.Audit == nil {
		return
	}
	entry := models.SecurityLog{
		ID:        uuid.New().String(),
		Event:     event,
		ActorID:   actorID,
		ActorRole: actorRole,
		Detail:    detail,
		IP:        ip,
		Timestamp: time.Now(),
	}
	if err := s.Audit.Insert(&entry); err != nil {
		utils.GetLogger().Warn("failed to write security log", zap.String("event", event), zap.Error(err))
	}
}
