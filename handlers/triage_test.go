package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthverse/models"
	"healthverse/services/triage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTriageService struct {
	assessment *models.TriageAssessment
	err        error
}

func (s *stubTriageService) Evaluate(ctx context.Context, sess models.SessionContext, symptoms string) (*models.TriageAssessment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.assessment, nil
}

func triageRouter(svc triage.TriageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/triage", func(c *gin.Context) {
		c.Set("userID", "pat-1")
		c.Set("displayName", "Jane Wanjiru")
	}, TriageHandler(svc))
	return r
}

func postTriage(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/triage", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTriageHandlerEmergency(t *testing.T) {
	svc := &stubTriageService{assessment: &models.TriageAssessment{
		Result:         models.TriageResult{PreDiagnosis: "possible cardiac event", TriageScore: 9},
		Disposition:    models.DispositionEmergency,
		EmergencyPhone: "911",
	}}
	w := postTriage(t, triageRouter(svc), `{"symptoms":"crushing chest pain and shortness of breath"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.TriageAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.DispositionEmergency, got.Disposition)
	assert.Equal(t, "911", got.EmergencyPhone)
	assert.Equal(t, 9, got.Result.TriageScore)
}

func TestTriageHandlerValidationError(t *testing.T) {
	svc := &stubTriageService{err: &triage.ValidationError{Message: triage.MsgSymptomsTooShort}}
	w := postTriage(t, triageRouter(svc), `{"symptoms":"cough"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), triage.MsgSymptomsTooShort)
}

func TestTriageHandlerUpstreamFailureIsGeneric(t *testing.T) {
	svc := &stubTriageService{err: &triage.UpstreamFormatError{Detail: "model returned invalid JSON"}}
	w := postTriage(t, triageRouter(svc), `{"symptoms":"fever and chills for two days"}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), triage.MsgGenericFailure)
	// Upstream details never leak to the patient.
	assert.NotContains(t, w.Body.String(), "invalid JSON")
}

func TestTriageHandlerRejectsMalformedBody(t *testing.T) {
	svc := &stubTriageService{}
	w := postTriage(t, triageRouter(svc), `{"symptoms":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlowStatusMapping(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"sessionNotFound", http.StatusNotFound},
		{"noDoctorsAvailable", http.StatusNotFound},
		{"unknownService", http.StatusBadRequest},
		{"invalidDoctor", http.StatusBadRequest},
		{"invalidSlot", http.StatusBadRequest},
		{"invalidStep", http.StatusConflict},
		{"incompleteDraft", http.StatusConflict},
		{"slotTaken", http.StatusConflict},
		{"submitInProgress", http.StatusConflict},
		{"persistence", http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, flowStatus(tc.code), tc.code)
	}
}
