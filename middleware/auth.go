// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "healthverse/database/repository/user"
	"healthverse/models"
	"healthverse/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware authenticates requests via a Bearer token. On success the
// account's ID, role, and display name are placed in the request context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// Revoked tokens are rejected until they expire on their own.
		ctx := context.Background()
		revokedKey := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
		if n, err := utils.GetAuthCacheClient().Exists(ctx, revokedKey).Result(); err == nil && n > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		account, err := repo.GetByUID(userID)
		if err != nil || account.Status != models.UserStatusActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Set("displayName", account.DisplayName)
		c.Next()
	}
}

// RequireRole restricts a route group to accounts holding one of the given
// roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
