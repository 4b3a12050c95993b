// File: handlers/booking.go
package handlers

import (
	"net/http"

	"healthverse/services/booking"

	"github.com/gin-gonic/gin"
)

// flowStatus maps a booking flow error code to an HTTP status.
func flowStatus(code string) int {
	switch code {
	case booking.CodeSessionNotFound, booking.CodeNoDoctorsAvailable:
		return http.StatusNotFound
	case booking.CodeUnknownService, booking.CodeInvalidDoctor, booking.CodeInvalidSlot:
		return http.StatusBadRequest
	case booking.CodeInvalidStep, booking.CodeIncompleteDraft,
		booking.CodeSlotTaken, booking.CodeSubmitInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondFlowError(c *gin.Context, err error) {
	if fe, ok := err.(*booking.FlowError); ok {
		c.JSON(flowStatus(fe.Code), gin.H{"error": fe.Message, "code": fe.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// StartBookingSession creates a new booking session, optionally seeded with
// a service suggested by the triage advisor.
func StartBookingSession(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Service string `json:"service"`
		}
		// Body is optional; an empty session starts at service selection.
		_ = c.ShouldBindJSON(&input)

		resp, err := svc.Initiate(sessionContextFrom(c), input.Service)
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SelectBookingService records the chosen clinic service and matches doctors.
func SelectBookingService(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		var input struct {
			Service string `json:"service" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.SelectService(sessionID, input.Service)
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SelectBookingDoctor records the chosen doctor.
func SelectBookingDoctor(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		var input struct {
			DoctorID string `json:"doctorId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.SelectDoctor(sessionID, input.DoctorID)
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SelectBookingSlot records the chosen date and time slot.
func SelectBookingSlot(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		var input struct {
			Date string `json:"date" binding:"required"`
			Time string `json:"time" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		resp, err := svc.SelectSlot(sessionID, input.Date, input.Time)
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// BookingBack steps the wizard back to the previous selection.
func BookingBack(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.Back(c.Param("sessionID"))
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ConfirmBooking persists the drafted appointment.
func ConfirmBooking(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := svc.Confirm(c.Param("sessionID"))
		if err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// CancelBooking discards the session draft.
func CancelBooking(svc booking.BookingSessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Cancel(c.Param("sessionID")); err != nil {
			respondFlowError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
