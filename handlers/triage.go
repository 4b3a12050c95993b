// File: handlers/triage.go
package handlers

import (
	"errors"
	"net/http"

	"healthverse/models"
	"healthverse/services/triage"
	"healthverse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TriageHandler evaluates a symptom description and returns the advisor's
// disposition: an emergency directive or a booking hand-off.
func TriageHandler(svc triage.TriageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Symptoms string `json:"symptoms"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		sess := sessionContextFrom(c)
		assessment, err := svc.Evaluate(c.Request.Context(), sess, input.Symptoms)
		if err != nil {
			var ve *triage.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
				return
			}
			utils.GetLogger().Error("triage evaluation failed",
				zap.String("patientId", sess.PatientID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": triage.MsgGenericFailure})
			return
		}

		c.JSON(http.StatusOK, assessment)
	}
}

// sessionContextFrom builds the patient context from auth middleware values.
func sessionContextFrom(c *gin.Context) models.SessionContext {
	return models.SessionContext{
		PatientID:   c.GetString("userID"),
		PatientName: c.GetString("displayName"),
	}
}
