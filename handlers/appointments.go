// File: handlers/appointments.go
package handlers

import (
	"errors"
	"net/http"

	"healthverse/services/appointment"

	"github.com/gin-gonic/gin"
)

// MyAppointments returns the authenticated patient's appointments.
func MyAppointments(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts, err := svc.ListForPatient(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
	}
}

// DoctorAppointments returns the authenticated doctor's schedule.
func DoctorAppointments(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts, err := svc.ListForDoctor(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
	}
}

// AllAppointments returns every appointment, newest first.
func AllAppointments(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts, err := svc.ListAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appts})
	}
}

// CheckInAppointment marks a confirmed appointment as checked in at the desk.
func CheckInAppointment(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CheckIn(c.Param("id")); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "checked in"})
	}
}

// CancelAppointment cancels a persisted appointment on behalf of the
// requesting account.
func CancelAppointment(svc appointment.AppointmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Cancel(c.Param("id"), c.GetString("userID"), c.GetString("userRole"))
		if err != nil {
			if errors.Is(err, appointment.ErrNotAppointmentOwner) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
