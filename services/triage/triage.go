// File: services/triage/triage.go
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"healthverse/models"
)

// Minimum trimmed length of a symptom description, in characters.
const minSymptomLength = 10

// EmergencyThreshold is the score at and above which triage routes to
// emergency care instead of booking.
const EmergencyThreshold = 7

// requestTimeout bounds one model call.
const requestTimeout = 30 * time.Second

const promptTemplate = `You are an AI nurse assistant that helps patients understand the urgency of their condition.
Based on the symptoms provided, generate a pre-diagnosis and a triage score (1-10, 1 being not urgent, and 10 being extremely urgent).
Respond with a JSON object containing exactly two fields: "preDiagnosis" (string) and "triageScore" (integer).

Symptoms: %s`

// modelOutput is the untrusted wire shape of the model response. The score
// is decoded as json.Number so a fractional value is detected instead of
// silently truncated.
type modelOutput struct {
	PreDiagnosis *string      `json:"preDiagnosis"`
	TriageScore  *json.Number `json:"triageScore"`
}

// Evaluate validates the symptom description, asks the model for a
// structured pre-diagnosis, and maps the triage score to a disposition.
// Neither the symptom text nor the result is persisted.
func (s *DefaultTriageService) Evaluate(ctx context.Context, sess models.SessionContext, symptoms string) (*models.TriageAssessment, error) {
	trimmed := strings.TrimSpace(symptoms)
	if utf8.RuneCountInString(trimmed) < minSymptomLength {
		return nil, &ValidationError{Message: MsgSymptomsTooShort}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	raw, err := s.Model.GenerateContent(ctx, fmt.Sprintf(promptTemplate, trimmed))
	if err != nil {
		return nil, &UpstreamUnavailableError{Err: err}
	}

	result, err := decodeResult(raw)
	if err != nil {
		return nil, err
	}

	assessment := &models.TriageAssessment{Result: *result}
	if result.TriageScore >= EmergencyThreshold {
		assessment.Disposition = models.DispositionEmergency
		assessment.EmergencyPhone = s.EmergencyPhone
	} else {
		assessment.Disposition = models.DispositionBookAppointment
		assessment.SuggestedService = "Consultation"
	}
	return assessment, nil
}

// decodeResult converts the untrusted model output into a TriageResult,
// failing closed on any schema mismatch.
func decodeResult(raw string) (*models.TriageResult, error) {
	var out modelOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		return nil, &UpstreamFormatError{Detail: fmt.Sprintf("model returned invalid JSON: %v", err)}
	}
	if out.PreDiagnosis == nil || strings.TrimSpace(*out.PreDiagnosis) == "" {
		return nil, &UpstreamFormatError{Detail: "model response missing preDiagnosis"}
	}
	if out.TriageScore == nil {
		return nil, &UpstreamFormatError{Detail: "model response missing triageScore"}
	}
	score, err := out.TriageScore.Int64()
	if err != nil {
		return nil, &UpstreamFormatError{Detail: fmt.Sprintf("triageScore %q is not an integer", out.TriageScore.String())}
	}
	if score < 1 || score > 10 {
		return nil, &UpstreamFormatError{Detail: fmt.Sprintf("triageScore %d outside range 1-10", score)}
	}
	return &models.TriageResult{
		PreDiagnosis: *out.PreDiagnosis,
		TriageScore:  int(score),
	}, nil
}
