// File: handlers/admin.go
package handlers

import (
	"net/http"

	auditlogRepoPkg "healthverse/database/repository/auditlog"
	"healthverse/models"
	"healthverse/services/clinical"
	"healthverse/services/user"

	"github.com/gin-gonic/gin"
)

const securityLogLimit = 100

// CreateUser provisions a new account and returns its setup link.
func CreateUser(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input user.CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		result, err := svc.CreateUser(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// ListUsers returns all platform accounts.
func ListUsers(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.GetAllUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// UpdateUser changes an account's display name.
func UpdateUser(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName string `json:"fullName" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		account, err := svc.UpdateUser(c.Param("uid"), input.FullName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

// DeactivateUser marks an account inactive.
func DeactivateUser(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeactivateUser(c.Param("uid")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
	}
}

// SecurityLogs returns the most recent audit events.
func SecurityLogs(repo auditlogRepoPkg.AuditLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := repo.Recent(securityLogLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch security logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": logs})
	}
}

// ListSetupLinks returns all issued setup links.
func ListSetupLinks(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := svc.ListSetupLinks()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch setup links"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"setupLinks": links})
	}
}

// RevokeSetupLink invalidates a user's pending setup link.
func RevokeSetupLink(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RevokeSetupLink(c.Param("uid")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "revoked"})
	}
}

// AssignPatient adds a patient to a nurse's panel.
func AssignPatient(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PatientID string `json:"patientId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.AssignPatient(c.Param("uid"), input.PatientID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "assigned"})
	}
}

// NurseSchedule replaces a nurse's shift schedule.
func NurseSchedule(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Schedule []models.ShiftAssignment `json:"schedule" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.UpdateSchedule(c.Param("uid"), input.Schedule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// ListNurses returns all nurse profiles.
func ListNurses(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		nurses, err := svc.ListNurses()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch nurses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"nurses": nurses})
	}
}
