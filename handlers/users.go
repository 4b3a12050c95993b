// File: handlers/users.go
package handlers

import (
	"net/http"
	"strings"

	"healthverse/middleware"
	"healthverse/services/user"

	"github.com/gin-gonic/gin"
)

// Login authenticates an account and returns a JWT.
func Login(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.Authenticate(input.Email, input.Password, middleware.GetClientIP(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CompleteSetup lets a provisioned user set their first password via a
// one-time setup link token.
func CompleteSetup(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Token    string `json:"token" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		account, err := svc.CompleteSetup(input.Token, input.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

// Logout revokes the bearer token used on this request. The token stays
// invalid until its natural expiry.
func Logout(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
			return
		}

		if err := svc.RevokeToken(tokenString, middleware.GetClientIP(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// Profile returns the authenticated account.
func Profile(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := svc.GetUserByUID(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}
