// File: handlers/directory.go
package handlers

import (
	"net/http"

	doctorRepoPkg "healthverse/database/repository/doctor"
	"healthverse/models"

	"github.com/gin-gonic/gin"
)

// ListDoctors returns the doctor directory, optionally filtered by the
// clinic service they offer.
func ListDoctors(repo doctorRepoPkg.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		service := c.Query("service")

		var (
			doctors []models.Doctor
			err     error
		)
		if service != "" {
			if !models.ValidService(service) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown service: " + service})
				return
			}
			doctors, err = repo.GetByService(service)
		} else {
			doctors, err = repo.GetAll()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch doctors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"doctors": doctors})
	}
}

// ListServices returns the clinic's bookable services and time slots.
func ListServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"services":  models.ClinicServices,
			"timeSlots": models.TimeSlots,
		})
	}
}
