// File: handlers/nurse.go
package handlers

import (
	"net/http"

	"healthverse/models"
	"healthverse/services/clinical"

	"github.com/gin-gonic/gin"
)

// LogVitals records a vitals measurement for a patient.
func LogVitals(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input clinical.VitalsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		record, err := svc.LogVitals(c.GetString("userID"), input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// PatientVitals returns the vitals history for a patient.
func PatientVitals(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := svc.PatientVitals(c.Param("patientID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vitals"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vitals": records})
	}
}

// UpdateOwnSchedule replaces the authenticated nurse's shift schedule.
func UpdateOwnSchedule(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Schedule []models.ShiftAssignment `json:"schedule" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.UpdateSchedule(c.GetString("userID"), input.Schedule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// NursePanel returns the authenticated nurse's profile and assigned patients.
func NursePanel(svc clinical.ClinicalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		panel, err := svc.Panel(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, panel)
	}
}
